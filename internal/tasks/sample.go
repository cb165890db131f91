package tasks

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/playlist"
)

// SampleTracks returns the built-in demonstration library.
func SampleTracks() []models.Track {
	return []models.Track{
		models.NewTrack("Bohemian Rhapsody", "Queen", 355, "flac"),
		models.NewTrack("Stairway to Heaven", "Led Zeppelin", 482, "mp3"),
		models.NewTrack("Hotel California", "Eagles", 391, "stream"),
		models.NewTrack("Sweet Child O' Mine", "Guns N' Roses", 356, "mp3"),
		models.NewTrack("Imagine", "John Lennon", 183, "flac"),
	}
}

// SampleLibrary builds the named sample playlist with the first n
// sample tracks (all of them when n <= 0), playing through performer.
func SampleLibrary(name string, n int, performer playlist.Performer, logger *log.Logger) *playlist.Basic {
	tracks := SampleTracks()
	if n <= 0 || n > len(tracks) {
		n = len(tracks)
	}

	pl := playlist.NewBasic(name, performer, logger)
	for _, track := range tracks[:n] {
		pl.Add(track)
	}
	return pl
}
