// Package repositories provides persistence layer implementations for all model types.
//
// Each repository implements models.Repository[T] for a specific entity type,
// handling CRUD operations, soft deletes, and sequence generation. The only
// entity the jukebox persists is the listening session written by the
// monitoring enhancer.
package repositories
