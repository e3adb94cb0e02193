package models

import "time"

// Group is a poll unit: a named time window with its own candidate set.
type Group struct {
	ID                       uint64 `json:"id"`
	Name                     string `json:"name"`
	Image                    string `json:"image"`
	Ipfs                     string `json:"ipfs"`
	Description              string `json:"description"`
	RequiresRegisteredVoters bool   `json:"requires_registered_voters"`
	Exists                   bool   `json:"exists"`
	StartTime                int64  `json:"start_time"`
	EndTime                  int64  `json:"end_time"`
	Active                   bool   `json:"active"`
}

// IsCompleted reports whether the group closed before now.
// Empty slots carry a zero end time and never count as completed.
func (v Group) IsCompleted(now time.Time) bool {
	return v.EndTime > 0 && v.EndTime < now.Unix()
}

// IsActive reports whether voting is open at now. The end time is exclusive.
func (v Group) IsActive(now time.Time) bool {
	ts := now.Unix()
	return v.Exists && v.StartTime <= ts && ts < v.EndTime
}
