// Package playlist implements the playlist contract and its enhancer chain.
//
// A [Playlist] exposes exactly four operations: Add, PlayAll, Describe,
// and Tracks. [Basic] is the ordered base implementation; the enhancers
// in enhancers.go wrap any Playlist-shaped value (base or another
// enhancer) and add one orthogonal behavior each while preserving the
// same contract, so wrappers compose at arbitrary depth. Chains are
// built at construction time and never re-parented, which keeps them
// strictly acyclic.
package playlist

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

// Performer plays one track at a time. Implemented by the tasks engine,
// which selects a codec and dispatches to the player coordinator.
type Performer interface {
	PlayTrack(ctx context.Context, track models.Track) error
}

// Playlist is the uniform contract shared by the base playlist and
// every enhancer wrapping one.
type Playlist interface {
	// Add appends a track to the underlying membership.
	Add(track models.Track)

	// PlayAll plays the playlist's tracks through the performer.
	// A failed track never aborts the remainder of the pass.
	PlayAll(ctx context.Context) error

	// Describe returns a human-readable summary of the playlist and
	// any enhancer behavior layered on top of it.
	Describe() string

	// Tracks returns a snapshot copy of the track sequence. Mutating
	// the returned slice never affects the playlist.
	Tracks() []models.Track
}

// Basic is the ordered, mutable base playlist. Insertion order is
// preserved; tracks are never mutated in place.
type Basic struct {
	name      string
	performer Performer
	logger    *log.Logger
	tracks    []models.Track
}

var _ Playlist = (*Basic)(nil)

// NewBasic creates an empty playlist that plays through performer.
func NewBasic(name string, performer Performer, logger *log.Logger) *Basic {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Basic{
		name:      name,
		performer: performer,
		logger:    logger,
	}
}

// Name returns the playlist's name.
func (b *Basic) Name() string {
	return b.name
}

// Add appends a track to the end of the sequence. Always succeeds.
func (b *Basic) Add(track models.Track) {
	b.tracks = append(b.tracks, track)
	b.logger.Debug("track added", "playlist", b.name, "track", track.Title)
}

// PlayAll plays every track in insertion order. A performer failure for
// one track (e.g. no codec configured) is logged and the pass continues.
func (b *Basic) PlayAll(ctx context.Context) error {
	b.logger.Info("playing playlist", "name", b.name, "tracks", len(b.tracks))

	for _, track := range b.tracks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.performer.PlayTrack(ctx, track); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Warn("track skipped", "track", track.Title, "error", err)
		}
	}
	return nil
}

// Describe summarizes the playlist's name, track count, and total duration.
func (b *Basic) Describe() string {
	total := 0
	for _, track := range b.tracks {
		total += track.Duration
	}
	return fmt.Sprintf("Playlist: %s | Tracks: %d | Duration: %ds", b.name, len(b.tracks), total)
}

// Tracks returns a snapshot copy of the track sequence.
func (b *Basic) Tracks() []models.Track {
	return slices.Clone(b.tracks)
}
