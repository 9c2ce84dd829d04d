package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStorePut(t *testing.T) {
	store := make(AttendanceStore)

	_, ok := store.Record("2025-07-15", "morning", "2025-001")
	assert.False(t, ok)

	rec := AttendanceRecord{Present: false, Intimation: true, IntimatedBy: "Mother", Reason: "Fever"}
	store.Put("2025-07-15", "morning", "2025-001", rec)

	got, ok := store.Record("2025-07-15", "morning", "2025-001")
	assert.True(t, ok)
	assert.Equal(t, rec, got)

	// คนละ session ไม่ชนกัน
	_, ok = store.Record("2025-07-15", "afternoon", "2025-001")
	assert.False(t, ok)
}

func TestDefaultAttendanceRecord(t *testing.T) {
	rec := DefaultAttendanceRecord()
	assert.True(t, rec.Present)
	assert.False(t, rec.Locked)
	assert.False(t, rec.Intimation)
	assert.Empty(t, rec.IntimatedBy)
	assert.Empty(t, rec.Reason)
}
