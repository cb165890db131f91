package tasks

import (
	"fmt"

	"github.com/desertthunder/jukebox/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	StartPlayback Phase = iota
	PlayTrack
	PlaybackDone
	DemoSection
	DemoDetail
	SelectCodec
)

func (p Phase) String() string {
	switch p {
	case StartPlayback:
		return "start_playback"
	case PlayTrack:
		return "play_track"
	case PlaybackDone:
		return "playback_done"
	case DemoSection:
		return "demo_section"
	case DemoDetail:
		return "demo_detail"
	case SelectCodec:
		return "select_codec"
	default:
		return ""
	}
}

func startPlaybackUpdate(description string, tracks int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   StartPlayback,
		Step:    0,
		Total:   tracks,
		Message: fmt.Sprintf("Playing: %s", description),
	}
}

func playTrackUpdate(track models.Track) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlayTrack,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%s - %s [%s]", track.Artist, track.Title, track.Format),
		Data:    track,
	}
}

func playbackDoneUpdate(result *PlayResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlaybackDone,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Playback complete (%d tracks, %.1fs)", result.TrackCount, result.Elapsed.Seconds()),
		Data:    result,
	}
}

func demoSectionUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DemoSection,
		Step:    step,
		Total:   total,
		Message: title,
	}
}

func demoDetailUpdate(format string, args ...any) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DemoDetail,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf(format, args...),
	}
}

func selectCodecUpdate(track models.Track, info string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SelectCodec,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%s -> %s", track.Title, info),
	}
}
