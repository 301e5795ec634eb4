package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quocvuong92/tassist/internal/constants"
)

// FileName is the name of the history file inside the data directory
const FileName = "history.json"

// Entry is one recorded command line
type Entry struct {
	SessionID string    `json:"session_id"`
	Line      string    `json:"line"`
	At        time.Time `json:"at"`
}

// History keeps the most recent command lines across sessions
type History struct {
	mu        sync.Mutex
	path      string
	limit     int
	sessionID string
	entries   []Entry
	now       func() time.Time
}

// DefaultPath returns $XDG_DATA_HOME/tassist/history.json, falling back to
// ~/.local/share
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, constants.AppName, FileName), nil
}

// NewSessionID returns a fresh random session identifier
func NewSessionID() string {
	return uuid.New().String()
}

// New creates a History stored at path that keeps at most limit entries.
// A non-positive limit uses the default.
func New(path string, limit int) *History {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	return &History{
		path:      path,
		limit:     limit,
		sessionID: NewSessionID(),
		now:       time.Now,
	}
}

// Path returns the history file location
func (h *History) Path() string {
	return h.path
}

// SessionID returns the identifier attached to lines added by this History
func (h *History) SessionID() string {
	return h.sessionID
}

// Load reads the history file. A missing file leaves the history empty.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			h.entries = nil
			return nil
		}
		return fmt.Errorf("failed to read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse history: %w", err)
	}
	h.entries = h.trim(entries)
	return nil
}

// Save writes the history file
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	entries := h.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Add records line. Blank lines are ignored.
func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.trim(append(h.entries, Entry{
		SessionID: h.sessionID,
		Line:      line,
		At:        h.now(),
	}))
}

// Recent returns up to n of the latest entries, oldest first
func (h *History) Recent(n int) []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Lines returns the recorded lines, oldest first
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.Line
	}
	return lines
}

// Len returns the number of recorded entries
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear removes all entries
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

func (h *History) trim(entries []Entry) []Entry {
	if len(entries) > h.limit {
		return entries[len(entries)-h.limit:]
	}
	return entries
}
