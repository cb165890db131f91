// package formatter provides functions to export playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/playlist"
	"github.com/desertthunder/jukebox/internal/shared"
)

// ExportToCSV converts a track listing to CSV with columns: Title, Artist, Duration, Format
func ExportToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Duration", "Format"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.Title,
			track.Artist,
			strconv.Itoa(track.Duration),
			track.Format.String(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown with a summary line and numbered track listing
func ExportToMarkdown(name string, description string, tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", name))
	buf.WriteString(fmt.Sprintf("**Summary**: %s\n\n", description))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		duration := shared.FormatDuration(track.Duration)
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s, %s]\n", i+1, track.Artist, track.Title, track.Format, duration))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(name string, tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", name))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(tracks)))

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport writes the playlist in the requested format ("csv",
// "markdown", "txt", or "json") and returns the created file path.
//
// The path defaults to "{name}.{ext}" in the working directory.
func WriteExport(name string, pl playlist.Playlist, format, path string) (string, error) {
	tracks := pl.Tracks()

	var data []byte
	var err error
	var ext string

	switch format {
	case "csv":
		ext = "csv"
		data, err = ExportToCSV(tracks)
	case "markdown", "md":
		ext = "md"
		data, err = ExportToMarkdown(name, pl.Describe(), tracks)
	case "txt", "text":
		ext = "txt"
		data, err = ExportToText(name, tracks)
	case "json", "":
		ext = "json"
		data, err = shared.MarshalJSON(struct {
			Name   string         `json:"name"`
			Tracks []models.Track `json:"tracks"`
		}{Name: name, Tracks: tracks}, true)
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate %s export: %w", format, err)
	}

	if path == "" {
		path = fmt.Sprintf("%s.%s", name, ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
