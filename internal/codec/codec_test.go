package codec

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/desertthunder/jukebox/internal/models"
)

func TestRegistry(t *testing.T) {
	t.Run("ForFormat maps each supported format", func(t *testing.T) {
		registry := NewRegistry(&bytes.Buffer{}, 0)

		if _, ok := registry.ForFormat(models.FormatMP3).(*MP3); !ok {
			t.Error("expected MP3 codec for mp3 format")
		}
		if _, ok := registry.ForFormat(models.FormatFLAC).(*FLAC); !ok {
			t.Error("expected FLAC codec for flac format")
		}
		if _, ok := registry.ForFormat(models.FormatStream).(*Stream); !ok {
			t.Error("expected Stream codec for stream format")
		}
	})

	t.Run("ForFormat falls back to mp3 for unknown format", func(t *testing.T) {
		registry := NewRegistry(&bytes.Buffer{}, 0)

		c := registry.ForFormat(models.Format("ogg"))
		if c != registry.Default() {
			t.Error("expected unknown format to resolve to the default codec")
		}
		if _, ok := c.(*MP3); !ok {
			t.Error("expected default codec to be MP3")
		}
	})

	t.Run("ForFormat is stable across calls", func(t *testing.T) {
		registry := NewRegistry(&bytes.Buffer{}, 0)

		first := registry.ForFormat(models.FormatFLAC)
		second := registry.ForFormat(models.FormatFLAC)
		if first != second {
			t.Error("expected the same codec instance for repeated lookups")
		}
	})
}

func TestCodecPlay(t *testing.T) {
	track := models.NewTrack("Hotel California", "Eagles", 391, "stream")

	tc := []struct {
		name string
		form models.Format
		want []string
	}{
		{
			name: "mp3 narrates decode",
			form: models.FormatMP3,
			want: []string{"Playing MP3: Hotel California by Eagles", "lossy compression"},
		},
		{
			name: "flac narrates decode",
			form: models.FormatFLAC,
			want: []string{"Playing FLAC: Hotel California by Eagles", "lossless compression"},
		},
		{
			name: "stream narrates buffering",
			form: models.FormatStream,
			want: []string{"Streaming: Hotel California by Eagles", "adaptive bitrate"},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			registry := NewRegistry(buf, 0)

			if err := registry.ForFormat(tt.form).Play(context.Background(), track); err != nil {
				t.Fatalf("Play() error: %v", err)
			}

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q, got:\n%s", want, out)
				}
			}
		})
	}

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		registry := NewRegistry(&bytes.Buffer{}, 0)
		if err := registry.Default().Play(ctx, track); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}

func TestCodecInfo(t *testing.T) {
	registry := NewRegistry(&bytes.Buffer{}, 0)

	tc := []struct {
		form models.Format
		want string
	}{
		{form: models.FormatMP3, want: "MP3: Lossy compression, smaller file size"},
		{form: models.FormatFLAC, want: "FLAC: Lossless compression, high quality audio"},
		{form: models.FormatStream, want: "Streaming: Adaptive bitrate, network dependent"},
	}

	for _, tt := range tc {
		t.Run(string(tt.form), func(t *testing.T) {
			if got := registry.ForFormat(tt.form).Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}
