package models

import (
	"fmt"
	"strings"
)

// Format identifies how a track's audio is encoded or delivered.
type Format string

const (
	FormatMP3    Format = "mp3"    // Lossy compression, smaller file size
	FormatFLAC   Format = "flac"   // Lossless compression, high quality audio
	FormatStream Format = "stream" // Adaptive bitrate, network dependent
)

// ParseFormat converts a raw format tag to a [Format].
//
// Unknown tags fall back to [FormatMP3]. The fallback is deliberate policy,
// not an error: every track must remain playable.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mp3":
		return FormatMP3
	case "flac":
		return FormatFLAC
	case "stream", "streaming":
		return FormatStream
	default:
		return FormatMP3
	}
}

func (f Format) String() string {
	return string(f)
}

// Track represents a playable item. Values are immutable after creation;
// multiple playlists may reference the same track.
type Track struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"` // Duration in seconds
	Format   Format `json:"format"`
}

// NewTrack creates a Track, normalizing the format tag and clamping a
// negative duration to zero.
func NewTrack(title, artist string, duration int, format string) Track {
	if duration < 0 {
		duration = 0
	}
	return Track{
		Title:    title,
		Artist:   artist,
		Duration: duration,
		Format:   ParseFormat(format),
	}
}

func (t Track) String() string {
	return fmt.Sprintf("%s - %s (%ds)", t.Title, t.Artist, t.Duration)
}
