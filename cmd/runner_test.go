package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desertthunder/jukebox/internal/codec"
	"github.com/desertthunder/jukebox/internal/player"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/tasks"
	tu "github.com/desertthunder/jukebox/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			jukeboxPlayer := player.New(player.Opts{Output: output})
			codecs := codec.NewRegistry(output, 0)
			engine := tasks.NewEngine(tasks.EngineOpts{Player: jukeboxPlayer, Codecs: codecs})

			runner := NewRunner(RunnerOpts{
				Config: config,
				Player: jukeboxPlayer,
				Codecs: codecs,
				Engine: engine,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.player != jukeboxPlayer {
				t.Error("expected player to be set")
			}
			if runner.codecs != codecs {
				t.Error("expected codecs to be set")
			}
			if runner.engine != engine {
				t.Error("expected engine to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Fatal("expected default config to be set")
			}
			if runner.config.Player.Codec != "auto" {
				t.Errorf("expected default codec policy, got %q", runner.config.Player.Codec)
			}
		})

		t.Run("with nil engine builds one from config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			if runner.engine == nil {
				t.Fatal("expected engine to be constructed")
			}
			if runner.engine.Player() != runner.player {
				t.Error("expected engine to dispatch to the runner's player")
			}
		})

		t.Run("with nil player uses the shared instance", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			if runner.player != player.Default() {
				t.Error("expected the shared player instance")
			}
		})
	})

	t.Run("register exposes every command", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		commands := runner.register()
		if len(commands) != 7 {
			t.Fatalf("expected 7 commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, c := range commands {
			names[c.Name] = true
		}
		for _, want := range []string{"demo", "play", "status", "export", "sessions", "setup", "tui"} {
			if !names[want] {
				t.Errorf("missing command %q", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]int{"volume": 75}, false); err != nil {
				t.Fatalf("writeJSON() error: %v", err)
			}
			if output.String() != "{\"volume\":75}\n" {
				t.Errorf("unexpected output: %q", output.String())
			}
		})

		t.Run("pretty", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]int{"volume": 75}, true); err != nil {
				t.Fatalf("writeJSON() error: %v", err)
			}
			if !strings.Contains(output.String(), "  \"volume\": 75") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})

		t.Run("write failure is reported", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON(map[string]int{"volume": 75}, false); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})

	t.Run("writePlain formats into the output", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("volume: %d\n", 75); err != nil {
			t.Fatalf("writePlain() error: %v", err)
		}
		if output.String() != "volume: 75\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})

	t.Run("writePlainHeader frames the title", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlainHeader("Playback Complete!")
		if !strings.Contains(output.String(), "Playback Complete!\n") {
			t.Errorf("expected framed title, got %q", output.String())
		}
	})

	t.Run("openSessions uses the configured path", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Database.Path = ":memory:"
		runner := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})

		repo, db, err := runner.openSessions()
		if err != nil {
			t.Fatalf("openSessions() error: %v", err)
		}
		defer db.Close()

		if repo == nil {
			t.Error("expected a session repository")
		}
		if err := db.Ping(); err != nil {
			t.Errorf("expected reachable database: %v", err)
		}
	})
}
