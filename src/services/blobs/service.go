package blobs

import (
	DB "Backend-SriSudha-School/src/database"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StudentsPath คือ path เดียวที่ frontend ใช้ sync รายชื่อนักเรียน
const StudentsPath = "students/students.json"

var ErrNotFound = errors.New("blob not found")

type blobDoc struct {
	Path      string    `bson:"path"`
	Content   []byte    `bson:"content"` // เก็บ body เดิมไม่แปลง
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Save persists content verbatim under path and returns the read-back URL.
func Save(path string, content []byte) (string, error) {
	_, err := DB.BlobCollection.UpdateOne(
		context.Background(),
		bson.M{"path": path},
		bson.M{"$set": blobDoc{Path: path, Content: content, UpdatedAt: time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", err
	}
	return "/api/blob/" + path, nil
}

// Get returns the raw stored content for path.
func Get(path string) ([]byte, error) {
	var doc blobDoc
	err := DB.BlobCollection.FindOne(context.Background(), bson.M{"path": path}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.Content, nil
}
