package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mark คะแนนสอบ 1 วิชา ของนักเรียน 1 คน ใน 1 เดือน
type Mark struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdmissionNo string             `bson:"admissionNo" json:"admissionNo"`
	Month       string             `bson:"month" json:"month"` // YYYY-MM
	Subject     string             `bson:"subject" json:"subject"`
	Marks       float64            `bson:"marks" json:"marks"`
	Status      string             `bson:"status" json:"status"` // Pass, Fail, Absent
	Remarks     string             `bson:"remarks" json:"remarks"`
}

// MarkEntry ค่าคะแนนที่เก็บใต้ month/subject
type MarkEntry struct {
	Marks   float64 `json:"marks"`
	Status  string  `json:"status"`
	Remarks string  `json:"remarks"`
}

// MarkSheet: month → subject → entry (รูปแบบเดียวกับที่ frontend ใช้)
type MarkSheet map[string]map[string]MarkEntry

// MarkImportRow is one row of a bulk marks import.
type MarkImportRow struct {
	AdmissionNo string  `json:"admissionNo"`
	Month       string  `json:"month,omitempty"`
	Subject     string  `json:"subject"`
	Marks       float64 `json:"marks"`
	Status      string  `json:"status,omitempty"`
	Remarks     string  `json:"remarks,omitempty"`
}
