package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAttendancePoll = "attendance:poll"

// NewAttendancePollTask - task ตรวจ session window, ยิงซ้ำทุก 20 วินาที
func NewAttendancePollTask() *asynq.Task {
	return asynq.NewTask(TypeAttendancePoll, nil)
}

const TypeLockSession = "attendance:lock-session"

type LockSessionPayload struct {
	Date    string `json:"date"`
	Session string `json:"session"`
}

// NewLockSessionTask finalizes one (date, session) explicitly, used when an
// admin closes a day early.
func NewLockSessionTask(date, session string) (*asynq.Task, error) {
	payload, err := json.Marshal(LockSessionPayload{Date: date, Session: session})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLockSession, payload), nil
}
