package attendance

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"Backend-SriSudha-School/src/models"

	"github.com/stretchr/testify/assert"
)

const testDate = "2025-07-15"

// fakeClock ให้ test เลื่อนเวลาเองได้
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func at(hh, mm int) time.Time {
	return time.Date(2025, 7, 15, hh, mm, 0, 0, time.UTC)
}

func newTestManager(hh, mm int) (*Manager, *fakeClock) {
	clock := &fakeClock{t: at(hh, mm)}
	m := NewManager(NewMemoryBlobStore(), clock.Now, time.UTC)
	return m, clock
}

// slowFirstSetStore หน่วง Set ครั้งแรกไว้ ใช้จำลอง write ที่มาถึงช้า
type slowFirstSetStore struct {
	inner *MemoryBlobStore
	mu    sync.Mutex
	seen  bool
}

func (s *slowFirstSetStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, key)
}

func (s *slowFirstSetStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	first := !s.seen
	s.seen = true
	s.mu.Unlock()
	if first {
		time.Sleep(50 * time.Millisecond)
	}
	return s.inner.Set(ctx, key, value)
}

func testRoster() []models.RosterEntry {
	return []models.RosterEntry{
		{AdmissionNo: "2025-001", Name: "Anil Kumar", Group: "Class 5"},
		{AdmissionNo: "2025-002", Name: "Bhavani Devi", Group: "Class 5"},
	}
}

func TestSetFieldPresent(t *testing.T) {
	t.Run("MarkingPresentLocksAndClearsIntimation", func(t *testing.T) {
		m, _ := newTestManager(9, 30)

		notice, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		assert.True(t, changed)
		assert.Equal(t, NoticeMarkedAbsent, notice)

		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldIntimation, true)
		assert.True(t, changed)
		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldIntimatedBy, "Mother")
		assert.True(t, changed)
		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldReason, "Fever")
		assert.True(t, changed)

		notice, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)
		assert.True(t, changed)
		assert.Equal(t, NoticeMarkedPresent, notice)

		rec := m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.True(t, rec.Present)
		assert.True(t, rec.Locked)
		assert.False(t, rec.Intimation)
		assert.Empty(t, rec.IntimatedBy)
		assert.Empty(t, rec.Reason)
	})

	t.Run("MarkingAbsentLeavesRecordUnlocked", func(t *testing.T) {
		m, _ := newTestManager(9, 30)

		notice, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		assert.True(t, changed)
		assert.Equal(t, NoticeMarkedAbsent, notice)

		rec := m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.False(t, rec.Present)
		assert.False(t, rec.Locked)
	})

	t.Run("LockedRecordRejectsAllEdits", func(t *testing.T) {
		m, _ := newTestManager(9, 30)

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)

		_, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		assert.False(t, changed)
		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldReason, "late edit")
		assert.False(t, changed)

		rec := m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.True(t, rec.Present)
		assert.True(t, rec.Locked)
	})

	t.Run("NonBoolPresentDropped", func(t *testing.T) {
		m, _ := newTestManager(9, 30)

		_, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, "yes")
		assert.False(t, changed)
	})
}

func TestSetFieldDetailRules(t *testing.T) {
	t.Run("DetailsRequireExistingAbsentRecord", func(t *testing.T) {
		m, _ := newTestManager(9, 30)

		// ยังไม่มี record → แก้รายละเอียดไม่ได้
		_, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldReason, "Fever")
		assert.False(t, changed)
		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldIntimation, true)
		assert.False(t, changed)

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldReason, "Fever")
		assert.True(t, changed)
	})

	t.Run("InvalidIntimatedByDropped", func(t *testing.T) {
		m, _ := newTestManager(9, 30)
		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)

		_, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldIntimatedBy, "Neighbour")
		assert.False(t, changed)

		for _, v := range []string{"Mother", "Father", "Guardian", "Relative", "Self", "Other", ""} {
			_, changed = m.SetField(testDate, SessionMorning, "2025-001", FieldIntimatedBy, v)
			assert.True(t, changed, "expected %q to be accepted", v)
		}
	})

	t.Run("UnknownFieldDropped", func(t *testing.T) {
		m, _ := newTestManager(9, 30)
		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)

		_, changed := m.SetField(testDate, SessionMorning, "2025-001", "remarks", "x")
		assert.False(t, changed)
	})
}

func TestSetFieldWindowGating(t *testing.T) {
	cases := []struct {
		name    string
		hh, mm  int
		session string
		allowed bool
	}{
		{"MorningOpensAt0900", 9, 0, SessionMorning, true},
		{"MorningAt1300", 13, 0, SessionMorning, true},
		{"MorningClosedBefore0900", 8, 59, SessionMorning, false},
		{"MorningDisabledAt1330", 13, 30, SessionMorning, false},
		{"AfternoonOpensAt1330", 13, 30, SessionAfternoon, true},
		{"AfternoonClosesAt1730Inclusive", 17, 30, SessionAfternoon, true},
		{"AfternoonClosedAfter1730", 17, 31, SessionAfternoon, false},
		{"AfternoonClosedInMorning", 10, 0, SessionAfternoon, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestManager(tc.hh, tc.mm)
			_, changed := m.SetField(testDate, tc.session, "2025-001", FieldPresent, true)
			assert.Equal(t, tc.allowed, changed)
		})
	}

	t.Run("WindowRecheckedAtWriteTime", func(t *testing.T) {
		// หน้าจออาจ render ตอน 13:29 แล้วกดบันทึกตอน 13:31
		m, clock := newTestManager(13, 29)
		assert.True(t, m.IsSessionWritable(SessionMorning, MinutesOfDay(m.Now())))

		clock.t = at(13, 31)
		_, changed := m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)
		assert.False(t, changed)
	})
}

func TestComputeDefaultSession(t *testing.T) {
	m, clock := newTestManager(10, 0)

	assert.Equal(t, SessionMorning, m.ComputeDefaultSession(MinutesOfDay(m.Now())))

	clock.t = at(13, 30)
	assert.Equal(t, SessionAfternoon, m.ComputeDefaultSession(MinutesOfDay(m.Now())))

	// นอกช่วงทั้งสอง → คงคาบเดิมไว้
	clock.t = at(18, 0)
	assert.Equal(t, SessionAfternoon, m.ComputeDefaultSession(MinutesOfDay(m.Now())))
	assert.Equal(t, SessionAfternoon, m.ActiveSession())

	m2, _ := newTestManager(7, 0)
	assert.Equal(t, SessionMorning, m2.ActiveSession())
}

func TestAutoGenerateReport(t *testing.T) {
	t.Run("WaitsForFullRoster", func(t *testing.T) {
		m, _ := newTestManager(9, 30)
		roster := testRoster()

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, roster)
		_, ok := m.Report(testDate, SessionMorning)
		assert.False(t, ok)

		m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, false)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, roster)
		report, ok := m.Report(testDate, SessionMorning)
		assert.True(t, ok)
		assert.Len(t, report.Summary, 1)
		assert.Equal(t, 1, report.Summary[0].PresentCount)
		assert.Equal(t, 1, report.Summary[0].AbsentCount)
	})

	t.Run("NeverOverwritesCachedReport", func(t *testing.T) {
		m, clock := newTestManager(9, 30)
		roster := testRoster()

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)
		m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, roster)

		first, _ := m.Report(testDate, SessionMorning)

		clock.t = at(10, 15)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, roster)
		second, _ := m.Report(testDate, SessionMorning)
		assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
	})

	t.Run("EmptyRosterNeverReports", func(t *testing.T) {
		m, _ := newTestManager(9, 30)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, nil)
		_, ok := m.Report(testDate, SessionMorning)
		assert.False(t, ok)
	})
}

func TestRegenerateReport(t *testing.T) {
	m, clock := newTestManager(9, 30)
	roster := testRoster()

	// regenerate ทำงานได้แม้ roster ยังบันทึกไม่ครบ
	m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, true)
	report := m.RegenerateReport(testDate, SessionMorning, roster)
	assert.Equal(t, 1, report.Summary[0].PresentCount)
	assert.Equal(t, 1, report.Summary[0].AbsentCount) // 2025-002 ยังไม่บันทึก → ขาด

	clock.t = at(11, 0)
	m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)
	report = m.RegenerateReport(testDate, SessionMorning, roster)
	assert.Equal(t, 2, report.Summary[0].PresentCount)
	assert.Equal(t, 0, report.Summary[0].AbsentCount)

	cached, ok := m.Report(testDate, SessionMorning)
	assert.True(t, ok)
	assert.Equal(t, at(11, 0), cached.GeneratedAt)
}

func TestTick(t *testing.T) {
	t.Run("LocksAbsentRecordsAfterWindowElapses", func(t *testing.T) {
		m, clock := newTestManager(9, 30)

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)

		m.Tick()
		rec := m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.False(t, rec.Locked, "window still open, nothing to finalize")

		clock.t = at(13, 30)
		m.Tick()
		rec = m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.False(t, rec.Present)
		assert.True(t, rec.Locked)
		assert.Equal(t, SessionAfternoon, m.ActiveSession())
	})

	t.Run("OpenWindowRecordsUntouched", func(t *testing.T) {
		m, clock := newTestManager(14, 0)

		m.SetField(testDate, SessionAfternoon, "2025-001", FieldPresent, false)
		clock.t = at(15, 0)
		m.Tick()

		rec := m.GetRecord(testDate, SessionAfternoon, "2025-001")
		assert.False(t, rec.Locked)
	})
}

func TestLockSession(t *testing.T) {
	m, _ := newTestManager(9, 30)

	m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
	m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)

	assert.Equal(t, 1, m.LockSession(testDate, SessionMorning))
	assert.Equal(t, 0, m.LockSession(testDate, SessionMorning))

	rec := m.GetRecord(testDate, SessionMorning, "2025-001")
	assert.True(t, rec.Locked)
}

func TestPersistence(t *testing.T) {
	t.Run("RoundTripThroughBlobStore", func(t *testing.T) {
		blobs := NewMemoryBlobStore()
		clock := &fakeClock{t: at(9, 30)}

		m := NewManager(blobs, clock.Now, time.UTC)
		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		m.SetField(testDate, SessionMorning, "2025-001", FieldIntimation, true)
		m.SetField(testDate, SessionMorning, "2025-001", FieldIntimatedBy, "Mother")
		m.SetField(testDate, SessionMorning, "2025-001", FieldReason, "Fever")
		m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)
		m.MaybeAutoGenerateReport(testDate, SessionMorning, testRoster())

		// persist เป็น fire-and-forget, รอให้ blob มาถึง
		assert.Eventually(t, func() bool {
			raw, err := blobs.Get(context.Background(), ReportKey)
			return err == nil && len(raw) > 0
		}, time.Second, 10*time.Millisecond)

		m2 := NewManager(blobs, clock.Now, time.UTC)
		rec := m2.GetRecord(testDate, SessionMorning, "2025-001")
		assert.False(t, rec.Present)
		assert.True(t, rec.Intimation)
		assert.Equal(t, "Mother", rec.IntimatedBy)
		assert.Equal(t, "Fever", rec.Reason)

		report, ok := m2.Report(testDate, SessionMorning)
		assert.True(t, ok)
		assert.Equal(t, 1, report.Summary[0].PresentCount)
	})

	t.Run("StaleSnapshotNeverOverwritesNewer", func(t *testing.T) {
		// Set แรกค้างนาน ทำให้ writer สองตัววิ่งจบสลับลำดับกันได้
		blobs := &slowFirstSetStore{inner: NewMemoryBlobStore()}
		clock := &fakeClock{t: at(9, 30)}
		m := NewManager(blobs, clock.Now, time.UTC)

		m.SetField(testDate, SessionMorning, "2025-001", FieldPresent, false)
		m.SetField(testDate, SessionMorning, "2025-002", FieldPresent, true)

		hasBoth := func() bool {
			raw, err := blobs.Get(context.Background(), StoreKey)
			if err != nil {
				return false
			}
			var store models.AttendanceStore
			if json.Unmarshal(raw, &store) != nil {
				return false
			}
			_, ok1 := store.Record(testDate, SessionMorning, "2025-001")
			_, ok2 := store.Record(testDate, SessionMorning, "2025-002")
			return ok1 && ok2
		}
		assert.Eventually(t, hasBoth, time.Second, 10*time.Millisecond)

		// รอให้ writer ตัวช้าทำงานจบ แล้ว snapshot ล่าสุดต้องยังอยู่
		time.Sleep(120 * time.Millisecond)
		assert.True(t, hasBoth())
	})

	t.Run("CorruptBlobStartsEmpty", func(t *testing.T) {
		blobs := NewMemoryBlobStore()
		_ = blobs.Set(context.Background(), StoreKey, []byte("{not json"))
		_ = blobs.Set(context.Background(), ReportKey, []byte("[]"))

		clock := &fakeClock{t: at(9, 30)}
		m := NewManager(blobs, clock.Now, time.UTC)

		rec := m.GetRecord(testDate, SessionMorning, "2025-001")
		assert.Equal(t, models.DefaultAttendanceRecord(), rec)
	})
}
