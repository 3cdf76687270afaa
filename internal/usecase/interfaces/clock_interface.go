package interfaces

import "time"

// IClock is the only source of "now" for the timer. All stored timestamps come
// from it, never from the client.
type IClock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
