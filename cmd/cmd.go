// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// demoCommand runs the guided demonstration of the player architecture.
func demoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Run the guided playback demonstration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "shuffle",
				Usage: "Randomize track order in the enhancer chain",
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "Number of passes through the demo playlist",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "volume",
				Usage: "Volume to set on the shared player",
				Value: 75,
			},
		},
		Action: r.Demo,
	}
}

// playCommand plays the sample library through an enhancer chain.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play the sample library",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Playlist name",
				Value: "Classic Rock Hits",
			},
			&cli.IntFlag{
				Name:  "tracks",
				Usage: "Number of sample tracks to include (0 for all)",
			},
			&cli.BoolFlag{
				Name:    "shuffle",
				Aliases: []string{"s"},
				Usage:   "Play tracks in randomized order",
			},
			&cli.IntFlag{
				Name:    "repeat",
				Aliases: []string{"r"},
				Usage:   "Number of passes through the playlist",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:    "monitor",
				Aliases: []string{"m"},
				Usage:   "Track usage analytics and record a listening session",
			},
			&cli.StringFlag{
				Name:  "codec",
				Usage: "Pin a codec (mp3, flac, stream) instead of per-track selection",
				Value: "auto",
			},
			&cli.IntFlag{
				Name:  "volume",
				Usage: "Set player volume before playback (0-100)",
			},
		},
		Action: r.Play,
	}
}

// statusCommand reports the shared player's current state.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the shared player status",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.PlayerStatus,
	}
}

// exportCommand writes the sample library to a file.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the sample library to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Playlist name",
				Value: "Classic Rock Hits",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (json, csv, markdown, txt)",
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
			&cli.IntFlag{
				Name:  "tracks",
				Usage: "Number of sample tracks to include (0 for all)",
			},
		},
		Action: r.Export,
	}
}

// sessionsCommand queries recorded listening sessions.
func sessionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "Inspect recorded listening sessions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded listening sessions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "playlist",
						Usage: "Filter by playlist name",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of sessions to return",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SessionsList,
			},
			{
				Name:  "stats",
				Usage: "Show aggregate listening statistics",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SessionsStats,
			},
		},
	}
}

// setupCommand handles setup operations for the session database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive library browser and player",
		Action: r.TUI,
	}
}
