// Package tasks orchestrates playback runs and the pattern demonstration.
//
// The core abstraction is Engine, which implements playlist.Performer:
// it applies the codec selection policy per track, paces playback with
// a rate limiter, and dispatches to the player coordinator. Operations
// emit progress updates via channels for non-blocking status reporting
// to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/codec"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/player"
	"github.com/desertthunder/jukebox/internal/playlist"
	"github.com/desertthunder/jukebox/internal/shared"
	"golang.org/x/time/rate"
)

var _ playlist.Performer = (*Engine)(nil)

// PlayResult contains all data from a completed playback run.
type PlayResult struct {
	Description string        // Outermost chain description at completion
	TrackCount  int           // Membership size of the played playlist
	Elapsed     time.Duration // Wall-clock duration of the run
	Status      player.Status // Coordinator snapshot after the run
}

// Engine coordinates playback between playlists, codecs, and the player.
type Engine struct {
	player   *player.Player
	codecs   *codec.Registry
	logger   *log.Logger
	limiter  *rate.Limiter
	pinned   codec.Codec
	progress chan<- ProgressUpdate
}

// EngineOpts contains configuration options for creating an Engine.
type EngineOpts struct {
	Player *player.Player
	Codecs *codec.Registry
	Logger *log.Logger

	// PaceLimit throttles track starts, in tracks per second.
	// Zero or negative disables pacing.
	PaceLimit float64
}

// NewEngine creates a new Engine with the provided dependencies.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Player == nil {
		opts.Player = player.Default()
	}
	if opts.Codecs == nil {
		opts.Codecs = codec.NewRegistry(nil, 0)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	var limiter *rate.Limiter
	if opts.PaceLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.PaceLimit), 1)
	}

	return &Engine{
		player:  opts.Player,
		codecs:  opts.Codecs,
		logger:  opts.Logger,
		limiter: limiter,
	}
}

// Pin disables per-track codec selection and plays everything with the
// codec registered for the given format.
func (e *Engine) Pin(f models.Format) {
	e.pinned = e.codecs.ForFormat(f)
}

// Unpin restores per-track codec selection.
func (e *Engine) Unpin() {
	e.pinned = nil
}

// Player returns the coordinator the engine dispatches to.
func (e *Engine) Player() *player.Player {
	return e.player
}

// PlayTrack selects a codec for the track, sets it on the coordinator,
// and plays. Implements [playlist.Performer].
func (e *Engine) PlayTrack(ctx context.Context, track models.Track) error {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	c := e.pinned
	if c == nil {
		c = e.codecs.ForFormat(track.Format)
	}
	e.player.SetCodec(c)

	e.send(playTrackUpdate(track))
	if err := e.player.Play(ctx, track); err != nil {
		return fmt.Errorf("playback failed for %q: %w", track.Title, err)
	}
	return nil
}

// Play runs a full pass of the given playlist (base or enhancer chain),
// emitting progress updates on prog throughout.
func (e *Engine) Play(ctx context.Context, prog chan<- ProgressUpdate, pl playlist.Playlist) (*PlayResult, error) {
	e.progress = prog
	defer func() { e.progress = nil }()

	e.send(startPlaybackUpdate(pl.Describe(), len(pl.Tracks())))

	start := time.Now()
	err := pl.PlayAll(ctx)
	elapsed := time.Since(start)

	result := &PlayResult{
		Description: pl.Describe(),
		TrackCount:  len(pl.Tracks()),
		Elapsed:     elapsed,
		Status:      e.player.Status(),
	}

	e.send(playbackDoneUpdate(result))
	return result, err
}

// sendProgress semantics: progress reporting never blocks execution.
func (e *Engine) send(update ProgressUpdate) {
	if e.progress == nil {
		return
	}
	select {
	case e.progress <- update:
	default:
	}
}
