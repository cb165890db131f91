package tasks

import (
	"context"
	"time"

	"github.com/desertthunder/jukebox/internal/player"
	"github.com/desertthunder/jukebox/internal/playlist"
)

// DemoOpts controls the enhancer chain built for the demonstration.
type DemoOpts struct {
	Shuffle   bool          // Wrap the chain with randomized order
	Repeat    int           // Repeat passes; < 1 uses the enhancer default
	RepeatGap time.Duration // Pause between repeat passes
	Volume    int           // Volume demonstrated on the shared instance
}

// DemoResult contains all data from a full demonstration run.
type DemoResult struct {
	SharedInstance   bool               // All coordinator accesses returned the identical instance
	ObservedVolume   int                // Volume read back through a second accessor
	CodecInfo        []string           // Selected codec description per sample track
	ChainDescription string             // Outermost description of the built enhancer chain
	Analytics        playlist.Analytics // Usage counters after the chain played
	FinalStatus      player.Status      // Shared player snapshot at the end
}

// Demo runs the three demonstration sections against the shared player
// instance: shared-state coordination, per-format codec selection, and
// enhancer-chain composition.
func (e *Engine) Demo(ctx context.Context, prog chan<- ProgressUpdate, opts DemoOpts) (*DemoResult, error) {
	e.progress = prog
	defer func() { e.progress = nil }()

	if opts.Volume <= 0 {
		opts.Volume = 75
	}

	result := &DemoResult{}

	// Section 1: every access to the shared coordinator observes one instance.
	e.send(demoSectionUpdate(1, 3, "Shared player instance"))

	p1 := player.Default()
	p2 := player.Default()
	p3 := player.Default()
	result.SharedInstance = p1 == p2 && p2 == p3
	e.send(demoDetailUpdate("All accessors returned the same instance: %t", result.SharedInstance))

	p1.SetVolume(opts.Volume)
	result.ObservedVolume = p2.Status().Volume
	e.send(demoDetailUpdate("Volume set via one accessor: %d, observed via another: %d", opts.Volume, result.ObservedVolume))

	// Section 2: codec selection maps each track's format to a behavior unit.
	e.send(demoSectionUpdate(2, 3, "Per-format codec selection"))

	for _, track := range SampleTracks()[:3] {
		c := e.codecs.ForFormat(track.Format)
		result.CodecInfo = append(result.CodecInfo, c.Info())
		e.send(selectCodecUpdate(track, c.Info()))

		p1.SetCodec(c)
		if err := p1.Play(ctx, track); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			e.logger.Warn("demo track skipped", "track", track.Title, "error", err)
		}
	}

	// Section 3: enhancer chain composed around the sample playlist.
	e.send(demoSectionUpdate(3, 3, "Enhancer chain composition"))

	var chain playlist.Playlist = SampleLibrary("Classic Rock Hits", 3, e, e.logger)
	e.send(demoDetailUpdate("%s", chain.Describe()))

	if opts.Shuffle {
		chain = playlist.NewShuffled(chain, e, e.logger)
		e.send(demoDetailUpdate("%s", chain.Describe()))
	}
	chain = playlist.NewRepeated(chain, opts.Repeat, opts.RepeatGap, e.logger)
	e.send(demoDetailUpdate("%s", chain.Describe()))

	monitored := playlist.NewMonitored(chain, e.logger, playlist.MonitorOpts{Label: "Classic Rock Hits"})
	e.send(demoDetailUpdate("%s", monitored.Describe()))

	if err := monitored.PlayAll(ctx); err != nil {
		return result, err
	}

	result.ChainDescription = monitored.Describe()
	result.Analytics = monitored.Analytics()
	result.FinalStatus = p1.Status()

	e.send(demoDetailUpdate("Final player status: %s", result.FinalStatus))
	return result, nil
}
