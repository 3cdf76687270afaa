package entities

import "time"

// IntervalLog is one discrete start/stop interval of work on a task.
//
// An open log (EndedAt == nil) exists only while its task is active.
// Manual logs are inserted by admins to correct history.
type IntervalLog struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"task_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Note      string     `json:"note,omitempty"`
	Manual    bool       `json:"manual"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (l IntervalLog) Open() bool {
	return l.EndedAt == nil
}

// Duration returns the closed length of the interval, or the length up to now
// when the log is still open.
func (l IntervalLog) Duration(now time.Time) time.Duration {
	end := now
	if l.EndedAt != nil {
		end = *l.EndedAt
	}
	if end.Before(l.StartedAt) {
		return 0
	}
	return end.Sub(l.StartedAt)
}

// Close sets the end of an open log.
func (l *IntervalLog) Close(at time.Time) {
	end := at
	l.EndedAt = &end
	l.UpdatedAt = at
}
