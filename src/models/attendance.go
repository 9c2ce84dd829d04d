package models

import "time"

// สถานะการมาเรียนของนักเรียน 1 คน ต่อ 1 (date, session)
type AttendanceRecord struct {
	Present     bool   `json:"present"`
	Intimation  bool   `json:"intimation"`
	IntimatedBy string `json:"intimatedBy"` // Mother, Father, Guardian, Relative, Self, Other หรือ ""
	Reason      string `json:"reason"`
	Locked      bool   `json:"locked"`
}

// DefaultAttendanceRecord is what the edit screen sees for an unmarked student.
// Reports use the opposite default (unmarked = absent), see BuildSessionReport.
func DefaultAttendanceRecord() AttendanceRecord {
	return AttendanceRecord{
		Present:     true,
		Intimation:  false,
		IntimatedBy: "",
		Reason:      "",
		Locked:      false,
	}
}

// AttendanceStore: date (YYYY-MM-DD) → session → admissionNo → record
type AttendanceStore map[string]map[string]map[string]AttendanceRecord

// Record returns the stored record and whether it exists.
func (s AttendanceStore) Record(date, session, admissionNo string) (AttendanceRecord, bool) {
	rec, ok := s[date][session][admissionNo]
	return rec, ok
}

// Put stores a record, creating the intermediate maps as needed.
func (s AttendanceStore) Put(date, session, admissionNo string, rec AttendanceRecord) {
	if s[date] == nil {
		s[date] = make(map[string]map[string]AttendanceRecord)
	}
	if s[date][session] == nil {
		s[date][session] = make(map[string]AttendanceRecord)
	}
	s[date][session][admissionNo] = rec
}

// SessionWindow ช่วงเวลาที่อนุญาตให้บันทึกการมาเรียน
type SessionWindow struct {
	Key          string `json:"key"`   // morning | afternoon
	Start        int    `json:"start"` // นาทีนับจากเที่ยงคืน
	End          int    `json:"end"`
	DisableAfter int    `json:"disableAfter"` // morning เท่านั้น, 0 = ไม่ใช้
}

// ReportStudent is one roster member inside a group summary.
type ReportStudent struct {
	AdmissionNo string `json:"admissionNo"`
	Name        string `json:"name"`
	Present     bool   `json:"present"`
	IntimatedBy string `json:"intimatedBy"`
	Reason      string `json:"reason"`
}

// GroupSummary นับจำนวนมา/ขาด ของกลุ่มเดียว
type GroupSummary struct {
	Group        string          `json:"group"`
	PresentCount int             `json:"presentCount"`
	AbsentCount  int             `json:"absentCount"`
	Students     []ReportStudent `json:"students"`
}

// SessionReport is a derived snapshot for one (date, session); never authoritative.
type SessionReport struct {
	Date        string         `json:"date"`
	Session     string         `json:"session"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Summary     []GroupSummary `json:"summary"`
}

// RosterEntry is the read-only view of a student the attendance manager borrows.
type RosterEntry struct {
	AdmissionNo string `json:"admissionNo"`
	Name        string `json:"name"`
	Group       string `json:"group"`
}
