package usecase

import (
	"fmt"
	"sort"

	"rcp_tracker/internal/domain/entities"
)

// SortLogs orders logs by start time, then id, in place.
func SortLogs(logs []entities.IntervalLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].StartedAt.Equal(logs[j].StartedAt) {
			return logs[i].ID < logs[j].ID
		}
		return logs[i].StartedAt.Before(logs[j].StartedAt)
	})
}

// ValidateIntervals checks the log invariants of one task:
//   - closed logs end at or after their start
//   - no two intervals intersect (touching boundaries are fine)
//   - at most one open log, and only when allowOpen is set
//
// An open log runs until now, so it must be the last one.
func ValidateIntervals(taskID string, logs []entities.IntervalLog, allowOpen bool) error {
	sorted := make([]entities.IntervalLog, len(logs))
	copy(sorted, logs)
	SortLogs(sorted)

	open := 0
	for i, l := range sorted {
		if l.Open() {
			open++
			if !allowOpen {
				return &OverlapError{TaskID: taskID, LogID: l.ID, Reason: "open interval on a task that is not active"}
			}
			if open > 1 {
				return &OverlapError{TaskID: taskID, LogID: l.ID, Reason: "more than one open interval"}
			}
		} else if l.EndedAt.Before(l.StartedAt) {
			return &OverlapError{TaskID: taskID, LogID: l.ID, Reason: "interval ends before it starts"}
		}

		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if prev.Open() {
			return &OverlapError{TaskID: taskID, LogID: l.ID, Reason: fmt.Sprintf("interval starts after open interval %s", prev.ID)}
		}
		if l.StartedAt.Before(*prev.EndedAt) {
			return &OverlapError{TaskID: taskID, LogID: l.ID, Reason: fmt.Sprintf("interval intersects %s", prev.ID)}
		}
	}
	return nil
}
