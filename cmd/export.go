package main

import (
	"context"

	"github.com/desertthunder/jukebox/internal/formatter"
	"github.com/desertthunder/jukebox/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes the sample library to a file in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	format := cmd.String("format")
	output := cmd.String("output")
	count := cmd.Int("tracks")

	library := tasks.SampleLibrary(name, count, r.engine, r.logger)

	path, err := formatter.WriteExport(name, library, format, output)
	if err != nil {
		return err
	}

	r.logger.Info("playlist exported", "format", format, "path", path)
	r.writePlain("✓ Exported %q to %s\n", name, path)

	return nil
}
