// Package loggertest provides a Logger that records entries for assertions.
package loggertest

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
}

// Recorder implements logger.Logger and keeps every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

func (r *Recorder) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

func (r *Recorder) Debug(args ...any) { r.record("debug", fmt.Sprint(args...)) }
func (r *Recorder) Info(args ...any)  { r.record("info", fmt.Sprint(args...)) }
func (r *Recorder) Warn(args ...any)  { r.record("warn", fmt.Sprint(args...)) }
func (r *Recorder) Error(args ...any) { r.record("error", fmt.Sprint(args...)) }

func (r *Recorder) Debugf(format string, args ...any) { r.record("debug", fmt.Sprintf(format, args...)) }
func (r *Recorder) Infof(format string, args ...any)  { r.record("info", fmt.Sprintf(format, args...)) }
func (r *Recorder) Warnf(format string, args ...any)  { r.record("warn", fmt.Sprintf(format, args...)) }
func (r *Recorder) Errorf(format string, args ...any) { r.record("error", fmt.Sprintf(format, args...)) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Contains reports whether an entry at level has a message containing substr.
func (r *Recorder) Contains(level, substr string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
