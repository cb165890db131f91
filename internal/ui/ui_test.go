package ui

import (
	"context"
	"testing"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/tasks"
)

func TestTrackItem(t *testing.T) {
	item := trackItem{track: models.NewTrack("Bohemian Rhapsody", "Queen", 355, "flac")}

	if item.Title() != "Bohemian Rhapsody" {
		t.Errorf("Title() = %q", item.Title())
	}
	if item.FilterValue() != "Bohemian Rhapsody" {
		t.Errorf("FilterValue() = %q", item.FilterValue())
	}
	if want := "Queen • flac • 5m55s"; item.Description() != want {
		t.Errorf("Description() = %q, want %q", item.Description(), want)
	}
}

func TestKeyMap(t *testing.T) {
	keys := newKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("expected short help bindings")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("expected full help bindings")
	}
}

func TestNewModel(t *testing.T) {
	engine := tasks.NewEngine(tasks.EngineOpts{})
	library := tasks.SampleLibrary("Classic Rock Hits", 0, engine, nil)

	m := NewModel(context.Background(), engine, library, nil)

	if m.view != LibraryView {
		t.Errorf("expected initial view LibraryView, got %v", m.view)
	}
	if m.repeat != 1 {
		t.Errorf("expected initial repeat 1, got %d", m.repeat)
	}
	if len(m.trackList.Items()) != len(library.Tracks()) {
		t.Errorf("expected %d list items, got %d", len(library.Tracks()), len(m.trackList.Items()))
	}
}
