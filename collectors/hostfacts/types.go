// Package hostfacts collects the host facts shown in the banner: user,
// hostname, OS, kernel, memory, shell, terminal, CPU and root disk usage.
//
// A collection run produces one immutable Snapshot. Every fact is optional;
// an empty string or nil Usage means the fact could not be determined on
// this host, which is a normal outcome rather than an error.
package hostfacts

import "time"

// Usage is a capacity reading taken from a single source in a single call,
// so Total and Available always share a unit (bytes) and a moment in time.
type Usage struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
}

// Used returns Total - Available, clamped at zero.
func (u Usage) Used() uint64 {
	if u.Available > u.Total {
		return 0
	}
	return u.Total - u.Available
}

// Snapshot holds every fact gathered by one collection run.
type Snapshot struct {
	User     string `json:"user,omitempty"`
	Hostname string `json:"hostname,omitempty"`
	OS       string `json:"os,omitempty"`
	Kernel   string `json:"kernel,omitempty"`
	Shell    string `json:"shell,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	CPU      string `json:"cpu,omitempty"`

	Memory   *Usage `json:"memory,omitempty"`
	RootDisk *Usage `json:"root_disk,omitempty"`
}

// Result is the output of a collection run.
type Result struct {
	Snapshot  Snapshot  `json:"snapshot"`
	Timestamp time.Time `json:"timestamp"`

	// Warnings contains the facts that could not be read and why.
	Warnings []string `json:"warnings,omitempty"`
}
