package integration

import (
	"time"

	"naraintegration/bootstrap"
	"naraintegration/services/store"
)

func emptySamples() bootstrap.Samples {
	return bootstrap.LoadSamples(false)
}

var fixedNow = time.Date(2024, 6, 12, 8, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{Now: func() time.Time { return fixedNow }}
}

func newTestRegistry() (*Registry, *store.MemoryMedium) {
	medium := store.NewMemoryMedium()
	return NewRegistry(store.New(medium), bootstrap.LoadSamples(true), testOptions()), medium
}

func ptr[T any](v T) *T {
	return &v
}
