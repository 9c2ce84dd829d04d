package outpasses

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/services/students"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOutpass - สร้างคำขอออกนอกโรงเรียน สถานะเริ่มต้น Pending
func CreateOutpass(outpass *models.Outpass) error {
	student, err := students.GetStudentByAdmissionNo(outpass.AdmissionNo)
	if err != nil {
		return err
	}

	outpass.ID = primitive.NewObjectID()
	outpass.StudentName = student.FullName() // denormalize ตอนสร้าง
	outpass.Class = student.Group
	outpass.Status = models.OutpassPending
	outpass.GateToken = uuid.NewString()
	outpass.Timestamp = time.Now()
	if outpass.Date == "" {
		outpass.Date = time.Now().Format("2006-01-02")
	}

	_, err = DB.OutpassCollection.InsertOne(context.Background(), outpass)
	return err
}

// GetOutpasses - ดึงคำขอทั้งหมด เรียงใหม่สุดก่อน
func GetOutpasses() ([]models.Outpass, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := DB.OutpassCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Outpass
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateOutpassStatus - เปลี่ยนสถานะคำขอ (Pending → Approved/Rejected/Returned)
func UpdateOutpassStatus(id, newStatus string) error {
	if !models.ValidOutpassStatus(newStatus) {
		return errors.New("invalid outpass status")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid outpass ID")
	}

	res, err := DB.OutpassCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": newStatus}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("outpass not found")
	}
	return nil
}

// GetOutpassByGateToken - ค้นหาคำขอจาก token ใน QR สำหรับตรวจที่ประตู
func GetOutpassByGateToken(token string) (*models.Outpass, error) {
	var outpass models.Outpass
	err := DB.OutpassCollection.FindOne(context.Background(), bson.M{"gateToken": token}).Decode(&outpass)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("outpass not found")
		}
		return nil, err
	}
	return &outpass, nil
}
