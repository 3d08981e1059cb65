package clock

import "time"

// Manual is a clock that only moves when told to.
type Manual struct {
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

func (m *Manual) Set(t time.Time) {
	m.now = t
}
