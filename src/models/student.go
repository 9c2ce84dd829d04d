package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student ข้อมูลนักเรียน
type Student struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdmissionNo string             `bson:"admissionNo" json:"admissionNo"` // เช่น 2025-001
	FirstName   string             `bson:"firstName" json:"firstName" validate:"required"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Group       string             `bson:"group" json:"group" validate:"required"` // เช่น "JR MPC IC-1 Boys"
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FatherName  string             `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
}

// FullName ชื่อเต็มสำหรับแสดงผล
func (s Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// RosterEntry converts the student to the view the attendance manager borrows.
func (s Student) RosterEntry() RosterEntry {
	return RosterEntry{
		AdmissionNo: s.AdmissionNo,
		Name:        s.FullName(),
		Group:       s.Group,
	}
}
