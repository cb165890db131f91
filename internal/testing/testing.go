// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/jukebox/internal/models"
)

// MockPerformer records every track it is asked to play. Satisfies
// playlist.Performer structurally.
type MockPerformer struct {
	Played []models.Track
	Err    error // Returned on every PlayTrack call when non-nil
}

func (m *MockPerformer) PlayTrack(ctx context.Context, track models.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Played = append(m.Played, track)
	return m.Err
}

// Reset clears the recorded tracks.
func (m *MockPerformer) Reset() {
	m.Played = nil
}

// MockRecorder captures sessions passed to Record. Satisfies
// playlist.SessionRecorder structurally.
type MockRecorder struct {
	Sessions []*models.ListeningSession
	Err      error
}

func (m *MockRecorder) Record(session *models.ListeningSession) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sessions = append(m.Sessions, session)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
