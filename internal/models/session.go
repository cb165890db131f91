package models

import (
	"fmt"
	"time"
)

var _ Model = (*ListeningSession)(nil)

// ListeningSession records one completed playback pass of a playlist,
// captured by the monitoring enhancer for later analytics queries.
type ListeningSession struct {
	id              string
	sequence        int
	playlist        string
	trackCount      int
	listenedSeconds int
	startedAt       time.Time
	createdAt       time.Time
	updatedAt       time.Time
	deletedAt       *time.Time
}

// NewListeningSession creates a session for the named playlist.
// The ID is assigned by the repository on Create.
func NewListeningSession(playlist string, trackCount, listenedSeconds int, startedAt time.Time) *ListeningSession {
	now := time.Now()
	return &ListeningSession{
		playlist:        playlist,
		trackCount:      trackCount,
		listenedSeconds: listenedSeconds,
		startedAt:       startedAt,
		createdAt:       now,
		updatedAt:       now,
	}
}

func (s *ListeningSession) ID() string            { return s.id }
func (s *ListeningSession) Sequence() int         { return s.sequence }
func (s *ListeningSession) Playlist() string      { return s.playlist }
func (s *ListeningSession) TrackCount() int       { return s.trackCount }
func (s *ListeningSession) ListenedSeconds() int  { return s.listenedSeconds }
func (s *ListeningSession) StartedAt() time.Time  { return s.startedAt }
func (s *ListeningSession) CreatedAt() time.Time  { return s.createdAt }
func (s *ListeningSession) UpdatedAt() time.Time  { return s.updatedAt }
func (s *ListeningSession) DeletedAt() *time.Time { return s.deletedAt }

func (s *ListeningSession) SetID(id string)             { s.id = id }
func (s *ListeningSession) SetSequence(seq int)         { s.sequence = seq }
func (s *ListeningSession) SetUpdatedAt(t time.Time)    { s.updatedAt = t }
func (s *ListeningSession) SetDeletedAt(t *time.Time)   { s.deletedAt = t }
func (s *ListeningSession) SetCreatedAt(t time.Time)    { s.createdAt = t }
func (s *ListeningSession) SetListenedSeconds(secs int) { s.listenedSeconds = secs }

// Validate checks that the session describes a plausible playback pass.
func (s *ListeningSession) Validate() error {
	if s.playlist == "" {
		return fmt.Errorf("session playlist name is required")
	}
	if s.trackCount < 0 {
		return fmt.Errorf("session track count cannot be negative: %d", s.trackCount)
	}
	if s.listenedSeconds < 0 {
		return fmt.Errorf("session listened seconds cannot be negative: %d", s.listenedSeconds)
	}
	if s.startedAt.IsZero() {
		return fmt.Errorf("session start time is required")
	}
	return nil
}
