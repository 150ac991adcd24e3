package telemetry

import (
	"time"

	"github.com/google/uuid"

	"github.com/circuitpilot/racepilot/pilot"
)

// TurnEvent records one call to pilot.Drive for spectators and
// post-race debugging. ID is a fresh UUID per event so events can be
// deduplicated or cross-referenced by a client that buffers a backlog.
type TurnEvent struct {
	ID        string             `json:"id"`
	Turn      int                `json:"turn"`
	Timestamp time.Time          `json:"timestamp"`
	Accel     pilot.Acceleration `json:"acceleration"`
	Err       string             `json:"error,omitempty"`
}

// NewTurnEvent stamps a TurnEvent for turn number n at time ts. err is
// recorded as its message string, or omitted when nil.
func NewTurnEvent(n int, ts time.Time, accel pilot.Acceleration, err error) TurnEvent {
	ev := TurnEvent{
		ID:        uuid.NewString(),
		Turn:      n,
		Timestamp: ts,
		Accel:     accel,
	}
	if err != nil {
		ev.Err = err.Error()
	}
	return ev
}
