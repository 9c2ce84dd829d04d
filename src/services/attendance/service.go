package attendance

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"Backend-SriSudha-School/src/models"
)

// Fields accepted by SetField. Anything else is dropped silently.
const (
	FieldPresent     = "present"
	FieldIntimation  = "intimation"
	FieldIntimatedBy = "intimatedBy"
	FieldReason      = "reason"
)

// Notices surfaced to the UI when the present flag changes. Not persisted.
const (
	NoticeMarkedPresent = "Marked Present"
	NoticeMarkedAbsent  = "Marked Absent"
)

var intimatedByValues = map[string]bool{
	"":         true,
	"Mother":   true,
	"Father":   true,
	"Guardian": true,
	"Relative": true,
	"Self":     true,
	"Other":    true,
}

// Manager owns the attendance store and the report cache. All mutations go
// through it; handlers and the poll job run on separate goroutines, so every
// operation takes the mutex.
type Manager struct {
	mu      sync.Mutex
	store   models.AttendanceStore
	reports map[string]map[string]*models.SessionReport // date → session → report
	windows map[string]models.SessionWindow
	blobs   BlobStore
	now     func() time.Time // injected clock, ทำให้ test จำลองเวลาได้
	loc     *time.Location

	activeSession string

	persistMu    sync.Mutex
	persistSeq   uint64 // guarded by mu
	persistedSeq uint64 // guarded by persistMu
}

// NewManager hydrates a manager from the blob store. Missing or corrupt blobs
// fall back to empty maps; the worst case is a fresh day sheet, never a crash.
func NewManager(blobs BlobStore, now func() time.Time, loc *time.Location) *Manager {
	m := &Manager{
		store:         make(models.AttendanceStore),
		reports:       make(map[string]map[string]*models.SessionReport),
		windows:       DefaultWindows(),
		blobs:         blobs,
		now:           now,
		loc:           loc,
		activeSession: SessionMorning,
	}

	ctx := context.Background()
	if raw, err := blobs.Get(ctx, StoreKey); err == nil {
		var store models.AttendanceStore
		if err := json.Unmarshal(raw, &store); err != nil {
			log.Println("⚠️ attendance store blob corrupt, starting empty:", err)
		} else if store != nil {
			m.store = store
		}
	}
	if raw, err := blobs.Get(ctx, ReportKey); err == nil {
		var reports map[string]map[string]*models.SessionReport
		if err := json.Unmarshal(raw, &reports); err != nil {
			log.Println("⚠️ attendance report blob corrupt, starting empty:", err)
		} else if reports != nil {
			m.reports = reports
		}
	}

	m.activeSession = m.defaultSession(MinutesOfDay(m.Now()))
	return m
}

var (
	defaultMgr  *Manager
	defaultOnce sync.Once
)

// Init สร้าง manager ตัวเดียวที่ใช้ร่วมกันทั้งระบบ
func Init() {
	defaultOnce.Do(func() {
		loc := SchoolLocation()
		defaultMgr = NewManager(RedisBlobStore{}, time.Now, loc)
	})
}

// Default returns the shared manager. Init must have run first.
func Default() *Manager {
	if defaultMgr == nil {
		Init()
	}
	return defaultMgr
}

// Now is the injected wall clock in the school timezone.
func (m *Manager) Now() time.Time {
	return m.now().In(m.loc)
}

// Today วันที่ปัจจุบันแบบ YYYY-MM-DD
func (m *Manager) Today() string {
	return m.Now().Format("2006-01-02")
}

// Windows returns a copy of the session window configuration.
func (m *Manager) Windows() map[string]models.SessionWindow {
	out := make(map[string]models.SessionWindow, len(m.windows))
	for k, v := range m.windows {
		out[k] = v
	}
	return out
}

// IsSessionWritable is pure given nowMinutes. Mutating calls re-evaluate it
// with a fresh clock read; never trust a writability flag computed at render
// time, the window may have closed since.
func (m *Manager) IsSessionWritable(session string, nowMinutes int) bool {
	w, ok := m.windows[session]
	if !ok {
		return false
	}
	return windowWritable(w, nowMinutes)
}

// ComputeDefaultSession re-reads the clock and switches the active session the
// moment the afternoon window opens. Outside both windows the previous choice
// is kept; morning wins only while afternoon is not yet selectable.
func (m *Manager) ComputeDefaultSession(nowMinutes int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSession = m.defaultSessionLocked(nowMinutes)
	return m.activeSession
}

func (m *Manager) defaultSession(nowMinutes int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaultSessionLocked(nowMinutes)
}

func (m *Manager) defaultSessionLocked(nowMinutes int) string {
	if windowWritable(m.windows[SessionAfternoon], nowMinutes) {
		return SessionAfternoon
	}
	if windowWritable(m.windows[SessionMorning], nowMinutes) {
		return SessionMorning
	}
	return m.activeSession
}

// ActiveSession คาบที่เลือกอยู่ปัจจุบัน
func (m *Manager) ActiveSession() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSession
}

// GetRecord returns the stored record, or the optimistic editing default
// (present, unlocked) when the student has not been marked yet.
func (m *Manager) GetRecord(date, session, admissionNo string) models.AttendanceRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.store.Record(date, session, admissionNo); ok {
		return rec
	}
	return models.DefaultAttendanceRecord()
}

// SessionRecords returns a copy of all records stored for (date, session).
func (m *Manager) SessionRecords(date, session string) map[string]models.AttendanceRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionRecordsLocked(date, session)
}

func (m *Manager) sessionRecordsLocked(date, session string) map[string]models.AttendanceRecord {
	out := make(map[string]models.AttendanceRecord, len(m.store[date][session]))
	for no, rec := range m.store[date][session] {
		out[no] = rec
	}
	return out
}

// SetField applies one field edit to a record. Writes outside the session
// window, to locked records, or with a bad field/value are dropped without
// error — the UI disables its controls, the manager just re-checks.
// The returned notice ("Marked Present"/"Marked Absent") is transient UI
// feedback, never stored.
func (m *Manager) SetField(date, session, admissionNo, field string, value interface{}) (notice string, changed bool) {
	nowMinutes := MinutesOfDay(m.Now())

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[session]
	if !ok || !windowWritable(w, nowMinutes) {
		return "", false
	}

	rec, exists := m.store.Record(date, session, admissionNo)
	if !exists {
		rec = models.DefaultAttendanceRecord()
	}

	switch field {
	case FieldPresent:
		present, ok := value.(bool)
		if !ok {
			return "", false
		}
		if exists && rec.Locked {
			return "", false
		}
		rec.Present = present
		if present {
			// invariant: a present record carries no intimation details
			rec.Intimation = false
			rec.IntimatedBy = ""
			rec.Reason = ""
			rec.Locked = true
			notice = NoticeMarkedPresent
		} else {
			rec.Locked = false
			notice = NoticeMarkedAbsent
		}

	case FieldIntimation:
		v, ok := value.(bool)
		if !ok || !exists || rec.Present || rec.Locked {
			return "", false
		}
		rec.Intimation = v

	case FieldIntimatedBy:
		v, ok := value.(string)
		if !ok || !intimatedByValues[v] || !exists || rec.Present || rec.Locked {
			return "", false
		}
		rec.IntimatedBy = v

	case FieldReason:
		v, ok := value.(string)
		if !ok || !exists || rec.Present || rec.Locked {
			return "", false
		}
		rec.Reason = v

	default:
		return "", false
	}

	m.store.Put(date, session, admissionNo, rec)
	m.persistLocked()
	return notice, true
}

// GenerateReport computes a report from current records without touching the
// cache.
func (m *Manager) GenerateReport(date, session string, roster []models.RosterEntry) models.SessionReport {
	m.mu.Lock()
	records := m.sessionRecordsLocked(date, session)
	m.mu.Unlock()
	return BuildSessionReport(date, session, roster, records, m.Now())
}

// MaybeAutoGenerateReport caches a report once every roster member has a
// record for (date, session). It never replaces a cached report.
func (m *Manager) MaybeAutoGenerateReport(date, session string, roster []models.RosterEntry) {
	if len(roster) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reports[date][session]; ok {
		return
	}
	records := m.store[date][session]
	for _, member := range roster {
		if _, ok := records[member.AdmissionNo]; !ok {
			return
		}
	}

	report := BuildSessionReport(date, session, roster, m.sessionRecordsLocked(date, session), m.Now())
	m.cacheReportLocked(&report)
	m.persistLocked()
}

// RegenerateReport recomputes and caches a report on explicit request, even
// when the roster is not fully marked. Always overwrites.
func (m *Manager) RegenerateReport(date, session string, roster []models.RosterEntry) models.SessionReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := BuildSessionReport(date, session, roster, m.sessionRecordsLocked(date, session), m.Now())
	m.cacheReportLocked(&report)
	m.persistLocked()
	return report
}

func (m *Manager) cacheReportLocked(report *models.SessionReport) {
	if m.reports[report.Date] == nil {
		m.reports[report.Date] = make(map[string]*models.SessionReport)
	}
	m.reports[report.Date][report.Session] = report
}

// Report returns the cached report for (date, session), if any.
func (m *Manager) Report(date, session string) (models.SessionReport, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[date][session]
	if !ok {
		return models.SessionReport{}, false
	}
	return *r, true
}

// Tick is the periodic poll (every ~20s from the worker). It advances the
// active session and finalizes absent records of sessions whose window has
// elapsed today. Boundary transitions are therefore detected within one poll
// interval, not instantaneously.
func (m *Manager) Tick() {
	now := m.Now()
	nowMinutes := MinutesOfDay(now)
	today := now.Format("2006-01-02")

	m.mu.Lock()
	defer m.mu.Unlock()

	m.activeSession = m.defaultSessionLocked(nowMinutes)

	dirty := false
	for key, w := range m.windows {
		if !windowElapsed(w, nowMinutes) {
			continue
		}
		for no, rec := range m.store[today][key] {
			if !rec.Present && !rec.Locked {
				rec.Locked = true
				m.store[today][key][no] = rec
				dirty = true
			}
		}
	}
	if dirty {
		log.Println("✅ attendance: locked finalized records for", today)
		m.persistLocked()
	}
}

// LockSession finalizes every absent record of one (date, session) without
// waiting for the window to elapse. Returns how many records were locked.
func (m *Manager) LockSession(date, session string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	locked := 0
	for no, rec := range m.store[date][session] {
		if !rec.Present && !rec.Locked {
			rec.Locked = true
			m.store[date][session][no] = rec
			locked++
		}
	}
	if locked > 0 {
		m.persistLocked()
	}
	return locked
}

// persistLocked writes both blobs fire-and-forget. Failures are logged only;
// local state stays authoritative. Writes are serialized through persistMu
// and carry a sequence number so a snapshot that got overtaken while waiting
// is dropped instead of overwriting a newer one.
func (m *Manager) persistLocked() {
	if m.blobs == nil {
		return
	}

	storeJSON, err := json.Marshal(m.store)
	if err != nil {
		log.Println("❌ attendance: marshal store failed:", err)
		return
	}
	reportJSON, err := json.Marshal(m.reports)
	if err != nil {
		log.Println("❌ attendance: marshal reports failed:", err)
		return
	}

	m.persistSeq++
	seq := m.persistSeq

	go func() {
		m.persistMu.Lock()
		defer m.persistMu.Unlock()
		if seq <= m.persistedSeq {
			return // snapshot ใหม่กว่าถูกเขียนไปแล้ว
		}

		ctx := context.Background()
		if err := m.blobs.Set(ctx, StoreKey, storeJSON); err != nil {
			log.Println("❌ attendance: persist store failed:", err)
		}
		if err := m.blobs.Set(ctx, ReportKey, reportJSON); err != nil {
			log.Println("❌ attendance: persist reports failed:", err)
		}
		m.persistedSeq = seq
	}()
}
