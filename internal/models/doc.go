// Package models defines domain entities and persistence interfaces for the jukebox playback simulator.
//
// The package contains two categories of types:
//
// 1. Value types describing playable material:
//   - [Track] : Immutable song metadata with a format tag
//   - [Format] : Closed enumeration of supported audio formats
//
// 2. Persistent entities: database-backed models with full lifecycle management
//   - [ListeningSession] : A completed playback pass recorded for analytics
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
