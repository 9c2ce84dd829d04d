package jobs

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/services/attendance"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// HandleAttendancePollTask อ่านนาฬิกาแล้วให้ manager ปรับ session / lock record
func HandleAttendancePollTask(ctx context.Context, t *asynq.Task) error {
	attendance.Default().Tick()
	return nil
}

func HandleLockSessionTask(ctx context.Context, t *asynq.Task) error {
	var payload LockSessionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ lock-session payload decode error:", err)
		return err
	}

	locked := attendance.Default().LockSession(payload.Date, payload.Session)
	log.Printf("✅ session locked: %s %s (%d records)", payload.Date, payload.Session, locked)
	return nil
}

// RunWorker starts the asynq worker and the periodic scheduler. The poll runs
// every 20s, so window transitions are picked up within one interval.
func RunWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Attendance poll worker will not start.")
		return
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAttendancePoll, HandleAttendancePollTask)
	mux.HandleFunc(TypeLockSession, HandleLockSessionTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 1},
	)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("❌ asynq worker failed:", err)
		}
	}()

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		&asynq.SchedulerOpts{Location: attendance.SchoolLocation()},
	)
	if _, err := scheduler.Register("@every 20s", NewAttendancePollTask()); err != nil {
		log.Fatal("❌ failed to register attendance poll:", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatal("❌ asynq scheduler failed:", err)
		}
	}()

	log.Println("✅ attendance poll worker started (every 20s)")
}
