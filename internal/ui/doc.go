// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI presents the track library, lets the user toggle enhancer
// behaviors (shuffle, repeat), and runs playback through the tasks
// engine while streaming progress updates into the view.
package ui
