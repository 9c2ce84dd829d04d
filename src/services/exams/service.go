package exams

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateExamSchedule - เพิ่มตารางสอบใหม่
func CreateExamSchedule(schedule *models.ExamSchedule) error {
	if schedule.ExamName == "" {
		return errors.New("examName is required")
	}
	if schedule.StartDate != "" && schedule.EndDate != "" && schedule.EndDate < schedule.StartDate {
		return errors.New("endDate before startDate")
	}

	schedule.ID = primitive.NewObjectID()
	_, err := DB.ExamScheduleCollection.InsertOne(context.Background(), schedule)
	return err
}

// GetExamSchedules - ดึงตารางสอบทั้งหมด เรียงใหม่สุดก่อน
func GetExamSchedules() ([]models.ExamSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := DB.ExamScheduleCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.ExamSchedule
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateExamSchedule - แก้ไขตารางสอบตาม ID
func UpdateExamSchedule(id string, updates bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid schedule ID")
	}
	delete(updates, "_id")
	delete(updates, "id")

	res, err := DB.ExamScheduleCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("schedule not found")
	}
	return nil
}

// DeleteExamSchedule - ลบตารางสอบ
func DeleteExamSchedule(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid schedule ID")
	}

	res, err := DB.ExamScheduleCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("schedule not found")
	}
	return nil
}
