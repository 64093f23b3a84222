package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder writes every frame and the deck state behind it to a temp
// directory, for debugging gestures and layout.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a TUI state recorder.
func NewRecorder(enabled bool) *Recorder {
	if !enabled {
		return &Recorder{enabled: false}
	}

	// Create recording directory
	recordDir := filepath.Join(os.TempDir(), fmt.Sprintf("swipe-record-%d", time.Now().Unix()))
	if err := os.MkdirAll(recordDir, 0750); err != nil {
		return &Recorder{enabled: false}
	}

	// Create log file
	logPath := filepath.Join(recordDir, "tui.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- safe constructed path
	if err != nil {
		return &Recorder{enabled: false}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: recordDir,
		frameNum: 0,
	}

	r.Log("Recording swipe session to %s", recordDir)
	return r
}

// RecordState captures the current state.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if r == nil || !r.enabled {
		return
	}

	r.frameNum++

	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("State: %v", m.state)
	r.Log("Deck: cursor %d of %d, epoch %d, exhausted %v",
		m.snapshot.Cursor, m.snapshot.Len(), m.snapshot.Epoch, m.snapshot.Exhausted)
	r.Log("Cart: %d liked, %d passed", len(m.snapshot.Liked), len(m.snapshot.Disliked))
	if m.card != nil {
		v := m.card.View()
		r.Log("Card: %q %s offset=(%.0f,%.0f) hint=%s", m.card.Item().Name, v.State, v.Offset.X, v.Offset.Y, v.Hint)
	}

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Dir returns the recording directory, empty when disabled.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.frameDir
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	if err := r.logFile.Sync(); err != nil {
		return
	}
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r != nil && r.logFile != nil {
		r.Log("Recording complete. %d frames captured.", r.frameNum)
		r.Log("Frames saved in %s", r.frameDir)
		_ = r.logFile.Close() // Best effort close
	}
}
