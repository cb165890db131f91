package playlist

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/jukebox/internal/models"
	tu "github.com/desertthunder/jukebox/internal/testing"
)

func sampleTracks() []models.Track {
	return []models.Track{
		models.NewTrack("Bohemian Rhapsody", "Queen", 355, "flac"),
		models.NewTrack("Stairway to Heaven", "Led Zeppelin", 482, "mp3"),
		models.NewTrack("Hotel California", "Eagles", 391, "stream"),
	}
}

func newBasic(performer Performer, tracks ...models.Track) *Basic {
	pl := NewBasic("Classic Rock Hits", performer, nil)
	for _, track := range tracks {
		pl.Add(track)
	}
	return pl
}

func TestBasic(t *testing.T) {
	t.Run("Describe sums track durations", func(t *testing.T) {
		pl := newBasic(&tu.MockPerformer{}, sampleTracks()...)

		want := "Playlist: Classic Rock Hits | Tracks: 3 | Duration: 1228s"
		if got := pl.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("Describe on empty playlist", func(t *testing.T) {
		pl := newBasic(&tu.MockPerformer{})

		want := "Playlist: Classic Rock Hits | Tracks: 0 | Duration: 0s"
		if got := pl.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("Tracks returns a snapshot", func(t *testing.T) {
		pl := newBasic(&tu.MockPerformer{}, sampleTracks()...)

		snapshot := pl.Tracks()
		snapshot[0] = models.NewTrack("Mutated", "Nobody", 1, "mp3")

		if pl.Tracks()[0].Title != "Bohemian Rhapsody" {
			t.Error("mutating the returned slice should not affect the playlist")
		}
	})

	t.Run("PlayAll plays in insertion order", func(t *testing.T) {
		performer := &tu.MockPerformer{}
		pl := newBasic(performer, sampleTracks()...)

		if err := pl.PlayAll(context.Background()); err != nil {
			t.Fatalf("PlayAll() error: %v", err)
		}

		if len(performer.Played) != 3 {
			t.Fatalf("expected 3 plays, got %d", len(performer.Played))
		}
		for i, track := range sampleTracks() {
			if performer.Played[i].Title != track.Title {
				t.Errorf("position %d: expected %q, got %q", i, track.Title, performer.Played[i].Title)
			}
		}
	})

	t.Run("PlayAll continues past a failing track", func(t *testing.T) {
		performer := &tu.MockPerformer{Err: errors.New("decode failed")}
		pl := newBasic(performer, sampleTracks()...)

		if err := pl.PlayAll(context.Background()); err != nil {
			t.Fatalf("expected failures to be absorbed, got %v", err)
		}
		if len(performer.Played) != 3 {
			t.Errorf("expected all 3 tracks attempted, got %d", len(performer.Played))
		}
	})

	t.Run("PlayAll honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		performer := &tu.MockPerformer{}
		pl := newBasic(performer, sampleTracks()...)

		if err := pl.PlayAll(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if len(performer.Played) != 0 {
			t.Errorf("expected no plays after cancellation, got %d", len(performer.Played))
		}
	})
}
