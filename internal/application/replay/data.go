// Package replay records held keys per tick and plays them back into a
// session. The simulation is deterministic, so a recording reproduces the
// same run on the same map.
package replay

import "github.com/younwookim/planetonomy/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
}

// NewFrameInput packs the keys held on frame
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{F: frame, L: in.Left, R: in.Right, U: in.Up}
}

// Input unpacks the held keys
func (f FrameInput) Input() system.InputState {
	return system.InputState{Left: f.L, Right: f.R, Up: f.U}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	DT        float64      `json:"dt"` // fixed tick length in seconds
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
