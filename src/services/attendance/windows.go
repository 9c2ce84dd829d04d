package attendance

import (
	"log"
	"os"
	"time"

	"Backend-SriSudha-School/src/models"
)

const (
	SessionMorning   = "morning"
	SessionAfternoon = "afternoon"
)

// ค่าอ้างอิง: เช้า 09:00-13:30 (ปิดเลือกหลัง 13:30), บ่าย 13:30-17:30
func DefaultWindows() map[string]models.SessionWindow {
	return map[string]models.SessionWindow{
		SessionMorning: {
			Key:          SessionMorning,
			Start:        9 * 60,
			End:          13*60 + 30,
			DisableAfter: 13*60 + 30,
		},
		SessionAfternoon: {
			Key:          SessionAfternoon,
			Start:        13*60 + 30,
			End:          17*60 + 30,
		},
	}
}

// windowWritable checks one window against minutes-of-day. Each window is
// evaluated on its own; nothing assumes afternoon starts where morning ends.
func windowWritable(w models.SessionWindow, nowMinutes int) bool {
	if nowMinutes < w.Start || nowMinutes > w.End {
		return false
	}
	if w.DisableAfter > 0 && nowMinutes >= w.DisableAfter {
		return false
	}
	return true
}

// windowElapsed reports whether the window can no longer accept entries today.
func windowElapsed(w models.SessionWindow, nowMinutes int) bool {
	if nowMinutes > w.End {
		return true
	}
	return w.DisableAfter > 0 && nowMinutes >= w.DisableAfter
}

// MinutesOfDay แปลงเวลาเป็นนาทีนับจากเที่ยงคืน
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SchoolLocation returns the wall-clock timezone for session windows.
func SchoolLocation() *time.Location {
	tz := os.Getenv("ATTENDANCE_TZ")
	if tz == "" {
		tz = "Asia/Kolkata"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Println("⚠️ invalid ATTENDANCE_TZ, falling back to Local:", err)
		return time.Local
	}
	return loc
}
