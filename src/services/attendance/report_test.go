package attendance

import (
	"testing"
	"time"

	"Backend-SriSudha-School/src/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSessionReport(t *testing.T) {
	roster := []models.RosterEntry{
		{AdmissionNo: "2025-003", Name: "Charan", Group: "Class 6"},
		{AdmissionNo: "2025-001", Name: "Anil Kumar", Group: "Class 5"},
		{AdmissionNo: "2025-002", Name: "Bhavani Devi", Group: "Class 5"},
		{AdmissionNo: "2025-004", Name: "Deepak", Group: "  "},
	}
	records := map[string]models.AttendanceRecord{
		"2025-001": {Present: true, Locked: true},
		"2025-002": {Present: false, Intimation: true, IntimatedBy: "Father", Reason: "Fever"},
		// 2025-003 และ 2025-004 ยังไม่บันทึก
	}
	generatedAt := time.Date(2025, 7, 15, 13, 45, 0, 0, time.UTC)

	report := BuildSessionReport(testDate, SessionMorning, roster, records, generatedAt)

	assert.Equal(t, testDate, report.Date)
	assert.Equal(t, SessionMorning, report.Session)
	assert.Equal(t, generatedAt, report.GeneratedAt)

	// กลุ่มเรียงตามชื่อ, ช่องว่าง → Ungrouped
	assert.Len(t, report.Summary, 3)
	assert.Equal(t, "Class 5", report.Summary[0].Group)
	assert.Equal(t, "Class 6", report.Summary[1].Group)
	assert.Equal(t, UngroupedLabel, report.Summary[2].Group)

	class5 := report.Summary[0]
	assert.Equal(t, 1, class5.PresentCount)
	assert.Equal(t, 1, class5.AbsentCount)
	assert.Equal(t, "Father", class5.Students[1].IntimatedBy)
	assert.Equal(t, "Fever", class5.Students[1].Reason)

	// นักเรียนที่ยังไม่บันทึกนับเป็นขาดในรายงาน
	class6 := report.Summary[1]
	assert.Equal(t, 0, class6.PresentCount)
	assert.Equal(t, 1, class6.AbsentCount)
	assert.False(t, class6.Students[0].Present)
}

func TestBuildSessionReportEmptyRoster(t *testing.T) {
	report := BuildSessionReport(testDate, SessionAfternoon, nil, nil, time.Now())
	assert.Empty(t, report.Summary)
}
