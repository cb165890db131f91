package playlist

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

var (
	_ Playlist = (*Shuffled)(nil)
	_ Playlist = (*Repeated)(nil)
	_ Playlist = (*Monitored)(nil)
)

// Shuffled overrides playback order with a fresh uniform permutation on
// every PlayAll call. The underlying membership is never reordered.
type Shuffled struct {
	inner     Playlist
	performer Performer
	logger    *log.Logger
	rng       *rand.Rand
}

// NewShuffled wraps inner with randomized playback order. The performer
// is required because the shuffle bypasses the inner PlayAll entirely.
func NewShuffled(inner Playlist, performer Performer, logger *log.Logger) *Shuffled {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Shuffled{
		inner:     inner,
		performer: performer,
		logger:    logger,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Add delegates to the inner playlist.
func (s *Shuffled) Add(track models.Track) {
	s.inner.Add(track)
}

// PlayAll takes a snapshot of the inner tracks, shuffles it uniformly,
// and plays the permutation directly through the performer. Each call
// produces an independent permutation, so a repetition wrapper around
// this one gets a new order every pass.
func (s *Shuffled) PlayAll(ctx context.Context) error {
	tracks := s.inner.Tracks()
	s.rng.Shuffle(len(tracks), func(i, j int) {
		tracks[i], tracks[j] = tracks[j], tracks[i]
	})

	s.logger.Info("shuffle pass", "tracks", len(tracks))

	for _, track := range tracks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.performer.PlayTrack(ctx, track); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("track skipped", "track", track.Title, "error", err)
		}
	}
	return nil
}

// Describe delegates and appends the shuffle marker.
func (s *Shuffled) Describe() string {
	return s.inner.Describe() + " | Shuffle: on"
}

// Tracks delegates to the inner playlist; read-back order is unchanged.
func (s *Shuffled) Tracks() []models.Track {
	return s.inner.Tracks()
}

// Repeated plays the inner playlist a fixed number of full passes.
type Repeated struct {
	inner  Playlist
	count  int
	gap    time.Duration
	logger *log.Logger
}

// NewRepeated wraps inner to play count full passes per PlayAll call.
// A count below 1 falls back to the default of 2. The gap is the pause
// between passes; there is no pause after the last.
func NewRepeated(inner Playlist, count int, gap time.Duration, logger *log.Logger) *Repeated {
	if count < 1 {
		count = 2
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Repeated{
		inner:  inner,
		count:  count,
		gap:    gap,
		logger: logger,
	}
}

// Count returns the configured number of passes.
func (r *Repeated) Count() int {
	return r.count
}

// Add delegates to the inner playlist.
func (r *Repeated) Add(track models.Track) {
	r.inner.Add(track)
}

// PlayAll invokes the inner PlayAll exactly count times, each pass
// completing before the next starts.
func (r *Repeated) PlayAll(ctx context.Context) error {
	for i := 0; i < r.count; i++ {
		r.logger.Info("repeat pass", "round", i+1, "of", r.count)
		if err := r.inner.PlayAll(ctx); err != nil {
			return err
		}
		if i < r.count-1 {
			if err := shared.Sleep(ctx, r.gap); err != nil {
				return err
			}
		}
	}
	return nil
}

// Describe delegates and appends the repeat count.
func (r *Repeated) Describe() string {
	return fmt.Sprintf("%s | Repeat: %dx", r.inner.Describe(), r.count)
}

// Tracks delegates to the inner playlist.
func (r *Repeated) Tracks() []models.Track {
	return r.inner.Tracks()
}

// SessionRecorder persists a completed playback pass. Implemented by
// the sessions repository; nil disables recording.
type SessionRecorder interface {
	Record(session *models.ListeningSession) error
}

// Analytics summarizes a Monitored playlist's usage counters.
type Analytics struct {
	PlayCount      int     `json:"play_count"`
	TotalSeconds   float64 `json:"total_seconds"`
	AverageSeconds float64 `json:"average_seconds"`
}

// Monitored tracks usage of the playlists it wraps: how many full
// passes completed and how much wall-clock time they took.
type Monitored struct {
	inner     Playlist
	label     string
	logger    *log.Logger
	clock     func() time.Time
	recorder  SessionRecorder
	playCount int
	totalTime time.Duration
}

// MonitorOpts contains configuration options for creating a Monitored playlist.
type MonitorOpts struct {
	Label    string           // Session label; defaults to "playlist"
	Recorder SessionRecorder  // Optional session persistence
	Clock    func() time.Time // Injectable clock for tests; defaults to time.Now
}

// NewMonitored wraps inner with usage tracking.
func NewMonitored(inner Playlist, logger *log.Logger, opts MonitorOpts) *Monitored {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Label == "" {
		opts.Label = "playlist"
	}
	return &Monitored{
		inner:    inner,
		label:    opts.Label,
		logger:   logger,
		clock:    opts.Clock,
		recorder: opts.Recorder,
	}
}

// Add delegates to the inner playlist.
func (m *Monitored) Add(track models.Track) {
	m.inner.Add(track)
}

// PlayAll delegates fully to the inner playlist, then records the pass:
// the play counter increments and the elapsed wall-clock time is added
// to the cumulative total. When a recorder is configured the pass is
// also persisted as a listening session; persistence failures are
// logged, never propagated.
func (m *Monitored) PlayAll(ctx context.Context) error {
	start := m.clock()
	err := m.inner.PlayAll(ctx)
	elapsed := m.clock().Sub(start)

	m.playCount++
	m.totalTime += elapsed
	m.logger.Info("session complete", "label", m.label, "plays", m.playCount, "elapsed", elapsed)

	if m.recorder != nil {
		session := models.NewListeningSession(
			m.label,
			len(m.inner.Tracks()),
			int(elapsed.Seconds()),
			start,
		)
		if recErr := m.recorder.Record(session); recErr != nil {
			m.logger.Warn("failed to record session", "error", recErr)
		}
	}

	return err
}

// Describe delegates and appends the usage counters.
func (m *Monitored) Describe() string {
	return fmt.Sprintf("%s | Plays: %d, Total time: %.1fs", m.inner.Describe(), m.playCount, m.totalTime.Seconds())
}

// Tracks delegates to the inner playlist.
func (m *Monitored) Tracks() []models.Track {
	return m.inner.Tracks()
}

// Analytics returns the usage counters. The average is zero, not a
// division error, when nothing has played yet.
func (m *Monitored) Analytics() Analytics {
	total := m.totalTime.Seconds()
	plays := m.playCount
	if plays < 1 {
		plays = 1
	}
	return Analytics{
		PlayCount:      m.playCount,
		TotalSeconds:   total,
		AverageSeconds: total / float64(plays),
	}
}
