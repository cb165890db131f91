package models

import (
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	tc := []struct {
		name string
		in   string
		want Format
	}{
		{name: "mp3", in: "mp3", want: FormatMP3},
		{name: "flac", in: "flac", want: FormatFLAC},
		{name: "stream", in: "stream", want: FormatStream},
		{name: "streaming alias", in: "streaming", want: FormatStream},
		{name: "mixed case", in: "FLAC", want: FormatFLAC},
		{name: "surrounding whitespace", in: "  mp3  ", want: FormatMP3},
		{name: "unknown falls back to mp3", in: "ogg", want: FormatMP3},
		{name: "empty falls back to mp3", in: "", want: FormatMP3},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormat(tt.in)
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrack(t *testing.T) {
	t.Run("NewTrack normalizes format", func(t *testing.T) {
		track := NewTrack("Imagine", "John Lennon", 183, "FLAC")
		if track.Format != FormatFLAC {
			t.Errorf("expected format %v, got %v", FormatFLAC, track.Format)
		}
	})

	t.Run("NewTrack clamps negative duration", func(t *testing.T) {
		track := NewTrack("Broken", "Nobody", -10, "mp3")
		if track.Duration != 0 {
			t.Errorf("expected duration 0, got %d", track.Duration)
		}
	})

	t.Run("String", func(t *testing.T) {
		track := NewTrack("Bohemian Rhapsody", "Queen", 355, "flac")
		want := "Bohemian Rhapsody - Queen (355s)"
		if got := track.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestListeningSession(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NewListeningSession sets timestamps", func(t *testing.T) {
		session := NewListeningSession("Classic Rock Hits", 3, 42, started)

		if session.Playlist() != "Classic Rock Hits" {
			t.Errorf("expected playlist name, got %q", session.Playlist())
		}
		if session.TrackCount() != 3 {
			t.Errorf("expected track count 3, got %d", session.TrackCount())
		}
		if session.ListenedSeconds() != 42 {
			t.Errorf("expected listened seconds 42, got %d", session.ListenedSeconds())
		}
		if !session.StartedAt().Equal(started) {
			t.Errorf("expected started at %v, got %v", started, session.StartedAt())
		}
		if session.CreatedAt().IsZero() || session.UpdatedAt().IsZero() {
			t.Error("expected created/updated timestamps to be set")
		}
		if session.ID() != "" {
			t.Error("expected ID to be unset before persistence")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			session *ListeningSession
			wantErr string
		}{
			{
				name:    "valid",
				session: NewListeningSession("My Mix", 5, 100, started),
			},
			{
				name:    "missing playlist",
				session: NewListeningSession("", 5, 100, started),
				wantErr: "playlist name",
			},
			{
				name:    "negative track count",
				session: NewListeningSession("My Mix", -1, 100, started),
				wantErr: "track count",
			},
			{
				name:    "negative listened seconds",
				session: NewListeningSession("My Mix", 5, -1, started),
				wantErr: "listened seconds",
			},
			{
				name:    "zero start time",
				session: NewListeningSession("My Mix", 5, 100, time.Time{}),
				wantErr: "start time",
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.session.Validate()
				if tt.wantErr == "" {
					if err != nil {
						t.Errorf("expected no error, got %v", err)
					}
					return
				}
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
				}
			})
		}
	})
}
