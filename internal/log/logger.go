// Package log provides structured event logging.
// This file appends JSON events to .flashdeck/log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionStarted   = "session_started"
	EventDeckLoaded       = "deck_loaded"
	EventDeckLoadFailed   = "deck_load_failed"
	EventSessionRestarted = "session_restarted"
	EventCardJumped       = "card_jumped"
	EventSessionFinished  = "session_finished"
	EventSessionExited    = "session_exited"
	EventDeckImported     = "deck_imported"
	EventServerStarted    = "server_started"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time      time.Time `json:"time"`
	Event     string    `json:"event"`
	SessionID string    `json:"session,omitempty"`
	DeckID    int64     `json:"deck,omitempty"`
	Title     string    `json:"title,omitempty"`
	Cards     int       `json:"cards,omitempty"`
	Index     int       `json:"index,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Error     string    `json:"error,omitempty"`
	Addr      string    `json:"addr,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .flashdeck/log.jsonl inside dir.
// Creates the .flashdeck/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	logDir := filepath.Join(dir, ".flashdeck")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create .flashdeck directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(logDir, "log.jsonl"),
	}, nil
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// A nil Logger discards the event.
func (l *Logger) Append(event LogEvent) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// Record appends event and drops any write error. Used from the TUI, where a
// failing log must not interrupt the session.
func (l *Logger) Record(event LogEvent) {
	_ = l.Append(event)
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
