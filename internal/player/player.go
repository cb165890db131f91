// Package player implements the playback coordinator.
//
// A Player owns the mutable playback state: the current track, the
// playing flag, the volume, and the active codec. Consumers receive an
// explicitly constructed Player by injection; [Default] additionally
// provides a process-wide shared instance for callers that need
// cross-call global access, constructed exactly once via [sync.Once].
package player

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/codec"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

// Status is a point-in-time snapshot of the coordinator's state.
type Status struct {
	Playing    bool   `json:"playing"`
	TrackTitle string `json:"track_title"` // "None" when no track is loaded
	Volume     int    `json:"volume"`
}

func (s Status) String() string {
	state := "Stopped"
	if s.Playing {
		state = "Playing"
	}
	return fmt.Sprintf("Status: %s | Track: %s | Volume: %d", state, s.TrackTitle, s.Volume)
}

// Player coordinates all playback state and dispatches actual playing
// to the active codec. Safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	logger  *log.Logger
	out     io.Writer
	current *models.Track
	playing bool
	volume  int
	codec   codec.Codec
}

// Opts contains configuration options for creating a Player.
type Opts struct {
	Logger *log.Logger
	Output io.Writer
	Volume int
}

// New creates a Player with the provided options. Volume outside [0,100]
// is clamped; a zero Opts yields a stopped player at volume 50.
func New(opts Opts) *Player {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Volume == 0 {
		opts.Volume = 50
	}

	return &Player{
		logger: opts.Logger,
		out:    opts.Output,
		volume: clamp(opts.Volume),
	}
}

var (
	defaultOnce   sync.Once
	defaultPlayer *Player
)

// Default returns the process-wide shared Player, constructing it on
// first access. Every caller observes the same instance; construction
// is safe under concurrent first access.
func Default() *Player {
	defaultOnce.Do(func() {
		defaultPlayer = New(Opts{})
		defaultPlayer.logger.Debug("player initialized")
	})
	return defaultPlayer
}

// SetCodec replaces the active codec. No validation is performed.
func (p *Player) SetCodec(c codec.Codec) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codec = c
}

// Play loads the track and dispatches to the active codec.
//
// With no codec configured the failure is reported to the user, state
// is left unchanged, and [shared.ErrNoCodec] is returned so batch
// callers can log and continue.
func (p *Player) Play(ctx context.Context, track models.Track) error {
	p.mu.Lock()
	c := p.codec
	if c == nil {
		p.mu.Unlock()
		fmt.Fprintf(p.out, "Cannot play %q: no codec configured\n", track.Title)
		return fmt.Errorf("%w: %s", shared.ErrNoCodec, track.Title)
	}
	t := track
	p.current = &t
	p.playing = true
	p.mu.Unlock()

	return c.Play(ctx, track)
}

// Pause flips to not-playing when currently playing; no-op otherwise.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return
	}
	p.playing = false

	title := "Unknown"
	if p.current != nil {
		title = p.current.Title
	}
	fmt.Fprintf(p.out, "Paused: %s\n", title)
}

// Stop clears the current track and the playing flag unconditionally.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.current = nil
	fmt.Fprintln(p.out, "Playback stopped")
}

// SetVolume stores v clamped into [0,100] and returns the stored value.
// Out-of-range input is never rejected.
func (p *Player) SetVolume(v int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = clamp(v)
	p.logger.Debug("volume changed", "volume", p.volume)
	return p.volume
}

// Volume returns the current volume.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Status returns a snapshot of the player's state. Pure read, no side effect.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	title := "None"
	if p.current != nil {
		title = p.current.Title
	}
	return Status{
		Playing:    p.playing,
		TrackTitle: title,
		Volume:     p.volume,
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
