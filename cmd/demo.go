package main

import (
	"context"
	"time"

	"github.com/desertthunder/jukebox/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Demo runs the guided demonstration: shared player coordination,
// per-format codec selection, and enhancer chain composition.
func (r *Runner) Demo(ctx context.Context, cmd *cli.Command) error {
	opts := tasks.DemoOpts{
		Shuffle:   cmd.Bool("shuffle") || r.config.Demo.Shuffle,
		Repeat:    cmd.Int("repeat"),
		RepeatGap: time.Duration(r.config.Playback.RepeatGapMS) * time.Millisecond,
		Volume:    cmd.Int("volume"),
	}
	if !cmd.IsSet("repeat") && r.config.Demo.Repeat > 0 {
		opts.Repeat = r.config.Demo.Repeat
	}

	r.logger.Info("starting demonstration", "shuffle", opts.Shuffle, "repeat", opts.Repeat)
	r.writePlainHeader("Music Player Demo")

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.DemoSection:
				r.writePlainln("── %d/%d %s ──", update.Step, update.Total, update.Message)
			case tasks.SelectCodec, tasks.DemoDetail:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Demo(ctx, progressCh, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlainln("")
	r.writePlainHeader("Demo Complete!")
	r.writePlain("Shared instance: %t\n", result.SharedInstance)
	r.writePlain("Observed volume: %d\n", result.ObservedVolume)
	r.writePlain("Chain: %s\n", result.ChainDescription)
	r.writePlain("Plays: %d | Average: %.1fs\n", result.Analytics.PlayCount, result.Analytics.AverageSeconds)
	r.writePlain("%s\n", result.FinalStatus)

	return nil
}
