// Package codec implements per-format playback behavior.
//
// Each codec is a stateless, reentrant behavior unit bound to one audio
// format. Playback is simulated: codecs narrate what they would do and
// block for a configurable decode delay. [Registry.ForFormat] is the
// pure mapping from a track's format tag to a codec; unknown tags fall
// back to the MP3 default by policy.
package codec

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

// Codec defines playback behavior for one audio format.
type Codec interface {
	// Play simulates decoding and playing a single track.
	// Blocks for the codec's decode delay; honors ctx cancellation.
	Play(ctx context.Context, track models.Track) error

	// Info returns a static human-readable description of the format handling.
	Info() string
}

var (
	_ Codec = (*MP3)(nil)
	_ Codec = (*FLAC)(nil)
	_ Codec = (*Stream)(nil)
)

// MP3 decodes lossy-compressed audio.
type MP3 struct {
	out   io.Writer
	delay time.Duration
}

func (c *MP3) Play(ctx context.Context, track models.Track) error {
	fmt.Fprintf(c.out, "Playing MP3: %s by %s\n", track.Title, track.Artist)
	fmt.Fprintln(c.out, "  Using MP3 decoder with lossy compression")
	return shared.Sleep(ctx, c.delay)
}

func (c *MP3) Info() string {
	return "MP3: Lossy compression, smaller file size"
}

// FLAC decodes lossless-compressed audio. Simulated decode takes twice
// the base delay to reflect the heavier decode path.
type FLAC struct {
	out   io.Writer
	delay time.Duration
}

func (c *FLAC) Play(ctx context.Context, track models.Track) error {
	fmt.Fprintf(c.out, "Playing FLAC: %s by %s\n", track.Title, track.Artist)
	fmt.Fprintln(c.out, "  Using FLAC decoder with lossless compression")
	return shared.Sleep(ctx, 2*c.delay)
}

func (c *FLAC) Info() string {
	return "FLAC: Lossless compression, high quality audio"
}

// Stream plays adaptive-bitrate streamed audio. Simulated buffering
// completes faster than a full decode.
type Stream struct {
	out   io.Writer
	delay time.Duration
}

func (c *Stream) Play(ctx context.Context, track models.Track) error {
	fmt.Fprintf(c.out, "Streaming: %s by %s\n", track.Title, track.Artist)
	fmt.Fprintln(c.out, "  Buffering... loading adaptive bitrate stream")
	return shared.Sleep(ctx, c.delay/2)
}

func (c *Stream) Info() string {
	return "Streaming: Adaptive bitrate, network dependent"
}

// Registry maps track formats to codec instances.
type Registry struct {
	codecs   map[models.Format]Codec
	fallback Codec
}

// NewRegistry creates a Registry with one codec per supported format,
// narrating to out. The base decode delay applies to all codecs; pass
// zero to disable simulated delays (tests, fast runs).
func NewRegistry(out io.Writer, delay time.Duration) *Registry {
	if out == nil {
		out = os.Stdout
	}
	if delay < 0 {
		delay = 0
	}

	mp3 := &MP3{out: out, delay: delay}
	return &Registry{
		codecs: map[models.Format]Codec{
			models.FormatMP3:    mp3,
			models.FormatFLAC:   &FLAC{out: out, delay: delay},
			models.FormatStream: &Stream{out: out, delay: delay},
		},
		fallback: mp3,
	}
}

// ForFormat returns the codec for the given format, or the MP3 default
// for unrecognized formats. The fallback is deliberate policy, never an error.
func (r *Registry) ForFormat(f models.Format) Codec {
	if c, ok := r.codecs[f]; ok {
		return c
	}
	return r.fallback
}

// Default returns the registry's fallback codec.
func (r *Registry) Default() Codec {
	return r.fallback
}
