// Package store persists integration collections as JSON blobs, one per collection key.
// Persistence is best effort: read failures fall back to a default and write failures are
// logged, never returned.
package store

import (
	"encoding/json"

	"naraintegration/pkg/logger"
)

// SchemaVersion is the record shape written by this build. Blobs with another version are ignored.
const SchemaVersion = 1

// Collection keys. They are shared with the portal's browser storage and must stay stable.
const (
	KeyGovernment       = "nara_integration_government"
	KeyResearch         = "nara_integration_research"
	KeySatelliteSources = "nara_integration_satellite_sources"
	KeySatelliteJobs    = "nara_integration_satellite_jobs"
	KeyAPIEndpoints     = "nara_integration_api_endpoints"
)

// Store maps collection keys to serialized values on a Medium. A nil medium means no
// persistence is available.
type Store struct {
	medium Medium
}

// New creates a Store on medium, which may be nil.
func New(medium Medium) *Store {
	return &Store{medium: medium}
}

// Available reports whether a persistence medium is attached.
func (s *Store) Available() bool {
	return s != nil && s.medium != nil
}

// Read decodes the value stored under key. On a missing key, an absent medium, a medium
// error, an unknown schema version or a decode failure it returns a deep copy of fallback.
func Read[T any](s *Store, key string, fallback T) T {
	if !s.Available() {
		return Clone(fallback)
	}

	raw, version, ok, err := s.medium.Load(key)
	if err != nil {
		logger.Warnf("[store] Failed to read %s: %v", key, err)
		return Clone(fallback)
	}
	if !ok || len(raw) == 0 {
		return Clone(fallback)
	}
	if version != SchemaVersion {
		logger.Warnf("[store] Ignoring %s written with schema version %d, expected %d", key, version, SchemaVersion)
		return Clone(fallback)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warnf("[store] Failed to decode %s: %v", key, err)
		return Clone(fallback)
	}
	return out
}

// Write serializes value under key. Failures are logged and swallowed; the caller's
// in-memory state stays authoritative.
func (s *Store) Write(key string, value interface{}) {
	if !s.Available() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warnf("[store] Failed to serialize %s: %v", key, err)
		return
	}
	if err := s.medium.Save(key, raw, SchemaVersion); err != nil {
		logger.Warnf("[store] Failed to persist %s: %v", key, err)
	}
}

// Reset removes key from the medium so the next Read returns its fallback.
func (s *Store) Reset(key string) {
	if !s.Available() {
		return
	}
	if err := s.medium.Remove(key); err != nil {
		logger.Warnf("[store] Failed to reset %s: %v", key, err)
	}
}

// Clone returns a deep copy of v that shares no memory with it. Values that cannot
// round-trip through JSON are returned as is.
func Clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warnf("[store] Failed to clone %T: %v", v, err)
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warnf("[store] Failed to clone %T: %v", v, err)
		return v
	}
	return out
}
