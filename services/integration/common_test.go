package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"naraintegration/services/dto"
	"naraintegration/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string   `json:"id"`
	Notes []string `json:"notes"`
}

func newItems(st *store.Store, seed []item) *collection[item] {
	return newCollection(st, "test_items", seed, func(i *item) string { return i.ID })
}

func TestCollection_SeedsFromFallbackThenFromStore(t *testing.T) {
	medium := store.NewMemoryMedium()
	st := store.New(medium)

	c := newItems(st, []item{{ID: "a"}})
	c.prepend(item{ID: "b"})

	reloaded := newItems(store.New(medium), []item{{ID: "seed-ignored"}})
	got := reloaded.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "newest first")
	assert.Equal(t, "a", got[1].ID)
}

func TestCollection_NilSeedIsEmpty(t *testing.T) {
	c := newItems(store.New(nil), nil)
	got := c.snapshot()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_SnapshotIsDeepCopy(t *testing.T) {
	c := newItems(store.New(nil), []item{{ID: "a", Notes: []string{"one"}}})

	got := c.snapshot()
	got[0].Notes[0] = "changed"

	assert.Equal(t, "one", c.snapshot()[0].Notes[0])
}

func TestCollection_UpdateMiss_DoesNotPersist(t *testing.T) {
	medium := store.NewMemoryMedium()
	c := newItems(store.New(medium), []item{{ID: "a"}})

	result, _ := c.update("missing", func(i *item) { i.Notes = []string{"x"} })
	assert.Equal(t, NotFound, result)

	_, _, ok, err := medium.Load("test_items")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollection_Remove(t *testing.T) {
	c := newItems(store.New(nil), []item{{ID: "a"}, {ID: "b"}})

	assert.Equal(t, Found, c.remove("a"))
	assert.Equal(t, NotFound, c.remove("a"))
	assert.Equal(t, []item{{ID: "b"}}, c.snapshot())
}

func TestCollection_ConcurrentPrepends(t *testing.T) {
	medium := store.NewMemoryMedium()
	c := newItems(store.New(medium), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.prepend(item{ID: string(rune('A' + n))})
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.snapshot(), 50)
	persisted := store.Read(store.New(medium), "test_items", []item{})
	assert.Len(t, persisted, 50, "the last persisted blob holds every item")
}

func TestResult(t *testing.T) {
	assert.True(t, Found.OK())
	assert.False(t, NotFound.OK())
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "not_found", NotFound.String())
}

func TestLatency_Duration(t *testing.T) {
	fixed := Latency{Min: 5 * time.Millisecond, Max: 5 * time.Millisecond}
	assert.Equal(t, 5*time.Millisecond, fixed.duration())

	ranged := Latency{Min: 100 * time.Millisecond, Max: 150 * time.Millisecond}
	for i := 0; i < 100; i++ {
		d := ranged.duration()
		assert.GreaterOrEqual(t, d, ranged.Min)
		assert.LessOrEqual(t, d, ranged.Max)
	}
}

func TestLatency_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Latency{Min: time.Hour, Max: time.Hour}.Wait(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRespond_CancelKeepsMutation(t *testing.T) {
	svc := NewGovernmentService(store.New(store.NewMemoryMedium()), nil, Options{Latency: Latency{Min: time.Hour, Max: time.Hour}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	created, err := svc.Create(ctx, dto.GovernmentConnectionCreate{Name: "Port authority feed"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, created)
	require.Len(t, svc.Snapshot(), 1, "the mutation is applied before the wait")
	assert.Equal(t, "Port authority feed", svc.Snapshot()[0].Name)
}
