package models

import "time"

type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseLoaded        Phase = "loaded"
	PhaseFailed        Phase = "failed"
)

// Terminal reports whether no fetch is pending in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseLoaded || p == PhaseFailed
}

// Snapshot is the whole observable state of the directory at one instant.
// Banks is shared between readers and must be treated as read-only.
type Snapshot struct {
	Banks      []Bank    `json:"banks"`
	IsLoading  bool      `json:"isLoading"`
	IsError    bool      `json:"isError"`
	Phase      Phase     `json:"phase"`
	Generation string    `json:"generation,omitempty"` // id of the fetch that produced this value
	UpdatedAt  time.Time `json:"updatedAt"`
}

// InitialSnapshot is the value before any fetch has been started.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Banks:     []Bank{},
		IsLoading: true,
		IsError:   false,
		Phase:     PhaseUninitialized,
	}
}
