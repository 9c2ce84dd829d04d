package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExamSubject วิชาเดียวในตารางสอบ
type ExamSubject struct {
	Name string `bson:"name" json:"name"`
	Date string `bson:"date" json:"date"` // YYYY-MM-DD
}

// ExamSchedule ตารางสอบของกลุ่มเรียน
type ExamSchedule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExamName  string             `bson:"examName" json:"examName"`
	Classes   []string           `bson:"classes" json:"classes"`
	StartDate string             `bson:"startDate" json:"startDate"`
	EndDate   string             `bson:"endDate" json:"endDate"`
	Subjects  []ExamSubject      `bson:"subjects" json:"subjects"`
}
