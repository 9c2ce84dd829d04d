package controllers

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/jobs"
	"Backend-SriSudha-School/src/models"
	"Backend-SriSudha-School/src/services/attendance"
	"Backend-SriSudha-School/src/services/students"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type sheetRow struct {
	models.RosterEntry
	Record models.AttendanceRecord `json:"record"`
}

// GetAttendanceSheet godoc
// @Summary Get today's attendance sheet
// @Description Returns the roster with the stored or default record per student. Date is always today; the session defaults to the active one.
// @Tags attendance
// @Produce json
// @Param session query string false "morning or afternoon"
// @Param group query string false "filter by group"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance [get]
func GetAttendanceSheet(c *fiber.Ctx) error {
	mgr := attendance.Default()

	// บังคับใช้วันนี้เท่านั้น เหมือน date picker ฝั่ง UI
	date := mgr.Today()
	session := c.Query("session")
	if session == "" {
		session = mgr.ComputeDefaultSession(attendance.MinutesOfDay(mgr.Now()))
	}

	roster, err := students.Roster()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load roster"})
	}

	group := c.Query("group")
	rows := make([]sheetRow, 0, len(roster))
	for _, member := range roster {
		if group != "" && member.Group != group {
			continue
		}
		rows = append(rows, sheetRow{
			RosterEntry: member,
			Record:      mgr.GetRecord(date, session, member.AdmissionNo),
		})
	}

	return c.JSON(fiber.Map{
		"date":     date,
		"session":  session,
		"writable": mgr.IsSessionWritable(session, attendance.MinutesOfDay(mgr.Now())),
		"students": rows,
	})
}

// SetAttendanceField godoc
// @Summary Set one attendance field
// @Description Applies a single field edit for today's date. Writes outside the session window or to locked records are dropped without error (saved=false).
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/record [patch]
func SetAttendanceField(c *fiber.Ctx) error {
	var body struct {
		Session     string      `json:"session"`
		AdmissionNo string      `json:"admissionNo"`
		Field       string      `json:"field"`
		Value       interface{} `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil || body.Session == "" || body.AdmissionNo == "" || body.Field == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "session, admissionNo and field are required"})
	}

	mgr := attendance.Default()
	date := mgr.Today()

	notice, changed := mgr.SetField(date, body.Session, body.AdmissionNo, body.Field, body.Value)
	if changed {
		// ครบทุกคนเมื่อไหร่ report จะถูกสร้างอัตโนมัติ
		if roster, err := students.Roster(); err == nil {
			mgr.MaybeAutoGenerateReport(date, body.Session, roster)
		}
	}

	resp := fiber.Map{"saved": changed, "date": date, "session": body.Session}
	if notice != "" {
		resp["message"] = notice
	}
	return c.JSON(resp)
}

// GetSessionState godoc
// @Summary Current session windows and writability
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /attendance/session [get]
func GetSessionState(c *fiber.Ctx) error {
	mgr := attendance.Default()
	nowMinutes := attendance.MinutesOfDay(mgr.Now())

	return c.JSON(fiber.Map{
		"date":           mgr.Today(),
		"activeSession":  mgr.ComputeDefaultSession(nowMinutes),
		"windows":        mgr.Windows(),
		"morningOpen":    mgr.IsSessionWritable(attendance.SessionMorning, nowMinutes),
		"afternoonOpen":  mgr.IsSessionWritable(attendance.SessionAfternoon, nowMinutes),
		"minutesElapsed": nowMinutes,
	})
}

// GetAttendanceReport godoc
// @Summary Get the cached session report
// @Tags attendance
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param session query string true "morning or afternoon"
// @Success 200 {object} models.SessionReport
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/report [get]
func GetAttendanceReport(c *fiber.Ctx) error {
	date := c.Query("date")
	session := c.Query("session")
	if date == "" || session == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "date and session are required"})
	}

	report, ok := attendance.Default().Report(date, session)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no report for this date and session"})
	}
	return c.JSON(report)
}

// RegenerateAttendanceReport godoc
// @Summary Regenerate a session report
// @Description Recomputes from current records, even if the roster is not fully marked, and overwrites the cached report.
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} models.SessionReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/report/regenerate [post]
func RegenerateAttendanceReport(c *fiber.Ctx) error {
	var body struct {
		Date    string `json:"date"`
		Session string `json:"session"`
	}
	if err := c.BodyParser(&body); err != nil || body.Date == "" || body.Session == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "date and session are required"})
	}

	roster, err := students.Roster()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load roster"})
	}

	report := attendance.Default().RegenerateReport(body.Date, body.Session, roster)
	return c.JSON(report)
}

// LockAttendanceSession godoc
// @Summary Finalize a session early (admin)
// @Description Enqueues a lock task when Asynq is available, otherwise locks in-process.
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/lock [post]
func LockAttendanceSession(c *fiber.Ctx) error {
	var body struct {
		Date    string `json:"date"`
		Session string `json:"session"`
	}
	if err := c.BodyParser(&body); err != nil || body.Date == "" || body.Session == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "date and session are required"})
	}

	if DB.AsynqClient != nil {
		task, err := jobs.NewLockSessionTask(body.Date, body.Session)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("lock-"+body.Date+"-"+body.Session)); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "enqueued"})
	}

	// ไม่มี Redis → lock ตรงนี้เลย
	locked := attendance.Default().LockSession(body.Date, body.Session)
	return c.JSON(fiber.Map{"status": "executed", "locked": locked})
}
