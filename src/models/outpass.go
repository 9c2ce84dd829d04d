package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะของใบอนุญาตออกนอกโรงเรียน
const (
	OutpassPending  = "Pending"
	OutpassApproved = "Approved"
	OutpassRejected = "Rejected"
	OutpassReturned = "Returned"
)

// Outpass คำขอออกนอกโรงเรียนของนักเรียน
type Outpass struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdmissionNo string             `bson:"admissionNo" json:"admissionNo"`
	StudentName string             `bson:"studentName" json:"studentName"` // denormalized ตอนสร้าง
	Class       string             `bson:"class" json:"class"`
	Reason      string             `bson:"reason" json:"reason"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	TimeOut     string             `bson:"timeOut" json:"timeOut"`
	TimeIn      string             `bson:"timeIn" json:"timeIn"`
	Status      string             `bson:"status" json:"status"`
	GateToken   string             `bson:"gateToken" json:"gateToken"` // uuid สำหรับ QR ที่ประตู
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ValidOutpassStatus reports whether s is one of the known states.
func ValidOutpassStatus(s string) bool {
	switch s {
	case OutpassPending, OutpassApproved, OutpassRejected, OutpassReturned:
		return true
	}
	return false
}
