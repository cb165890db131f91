package main

import (
	"context"
	"time"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/playlist"
	"github.com/desertthunder/jukebox/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Play plays the sample library through an enhancer chain built from flags.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	count := cmd.Int("tracks")
	shuffle := cmd.Bool("shuffle")
	repeat := cmd.Int("repeat")
	monitor := cmd.Bool("monitor")
	codecFlag := cmd.String("codec")

	if cmd.IsSet("volume") {
		r.player.SetVolume(cmd.Int("volume"))
	}

	if codecFlag != "" && codecFlag != "auto" {
		r.engine.Pin(models.ParseFormat(codecFlag))
		defer r.engine.Unpin()
	}

	library := tasks.SampleLibrary(name, count, r.engine, r.logger)

	var chain playlist.Playlist = library
	if shuffle {
		chain = playlist.NewShuffled(chain, r.engine, r.logger)
	}
	if repeat > 1 {
		gap := time.Duration(r.config.Playback.RepeatGapMS) * time.Millisecond
		chain = playlist.NewRepeated(chain, repeat, gap, r.logger)
	}

	var monitored *playlist.Monitored
	if monitor {
		opts := playlist.MonitorOpts{Label: name}
		if repo, db, err := r.openSessions(); err != nil {
			r.logger.Warn("session store unavailable, analytics will not persist", "error", err)
		} else {
			defer db.Close()
			opts.Recorder = repo
		}
		monitored = playlist.NewMonitored(chain, r.logger, opts)
		chain = monitored
	}

	r.logger.Info("starting playback", "playlist", name, "tracks", len(chain.Tracks()))
	r.writePlain("%s\n\n", chain.Describe())

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.StartPlayback:
				r.writePlain("▶ %s\n", update.Message)
			case tasks.PlayTrack:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Play(ctx, progressCh, chain)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlainln("")
	r.writePlainHeader("Playback Complete!")
	r.writePlain("%s\n", result.Description)
	r.writePlain("Tracks: %d | Elapsed: %.1fs\n", result.TrackCount, result.Elapsed.Seconds())
	r.writePlain("%s\n", result.Status)

	if monitored != nil {
		analytics := monitored.Analytics()
		r.writePlain("Plays: %d | Listened: %.1fs | Average: %.1fs\n",
			analytics.PlayCount, analytics.TotalSeconds, analytics.AverageSeconds)
	}

	return nil
}

// PlayerStatus reports the shared player's current state.
func (r *Runner) PlayerStatus(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	status := r.player.Status()
	if useJSON {
		return r.writeJSON(status, pretty)
	}

	r.writePlain("%s\n", status)
	return nil
}
