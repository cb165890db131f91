package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// sessionSummary is the JSON projection of a listening session.
type sessionSummary struct {
	ID              string    `json:"id"`
	Sequence        int       `json:"sequence"`
	Playlist        string    `json:"playlist"`
	TrackCount      int       `json:"track_count"`
	ListenedSeconds int       `json:"listened_seconds"`
	StartedAt       time.Time `json:"started_at"`
}

func summarize(s *models.ListeningSession) sessionSummary {
	return sessionSummary{
		ID:              s.ID(),
		Sequence:        s.Sequence(),
		Playlist:        s.Playlist(),
		TrackCount:      s.TrackCount(),
		ListenedSeconds: s.ListenedSeconds(),
		StartedAt:       s.StartedAt(),
	}
}

// SessionsList lists recorded listening sessions, newest last.
func (r *Runner) SessionsList(ctx context.Context, cmd *cli.Command) error {
	playlistFilter := cmd.String("playlist")
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	repo, db, err := r.openSessions()
	if err != nil {
		return err
	}
	defer db.Close()

	criteria := map[string]any{}
	if playlistFilter != "" {
		criteria["playlist"] = playlistFilter
	}

	sessions, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if limit > 0 && limit < len(sessions) {
		sessions = sessions[:limit]
	}

	if useJSON {
		summaries := make([]sessionSummary, 0, len(sessions))
		for _, s := range sessions {
			summaries = append(summaries, summarize(s))
		}
		return r.writeJSON(summaries, pretty)
	}

	r.writePlainHeader(fmt.Sprintf("Listening Sessions (%d)", len(sessions)))
	for _, s := range sessions {
		r.writePlain("%4d  %s  %s (%d tracks, %s)\n",
			s.Sequence(),
			s.StartedAt().Format("2006-01-02 15:04"),
			s.Playlist(),
			s.TrackCount(),
			shared.FormatDuration(s.ListenedSeconds()),
		)
	}

	return nil
}

// SessionsStats shows aggregate listening statistics.
func (r *Runner) SessionsStats(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	repo, db, err := r.openSessions()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	if useJSON {
		return r.writeJSON(stats, pretty)
	}

	r.writePlainHeader("Listening Statistics")
	r.writePlain("Sessions: %d\n", stats.Count)
	r.writePlain("Total listened: %s\n", shared.FormatDuration(stats.TotalListened))
	r.writePlain("Average per session: %.1fs\n", stats.AverageListened)

	return nil
}
