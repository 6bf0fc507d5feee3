package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

type failingMedium struct {
	loadErr error
	saveErr error
	saves   int
}

func (f *failingMedium) Load(string) ([]byte, int, bool, error) { return nil, 0, false, f.loadErr }
func (f *failingMedium) Save(string, []byte, int) error {
	f.saves++
	return f.saveErr
}
func (f *failingMedium) Remove(string) error { return f.saveErr }

func TestRead_NoMedium_ReturnsCopyOfFallback(t *testing.T) {
	fallback := []record{{ID: "gov-1", Tags: []string{"a"}}}
	s := New(nil)

	got := Read(s, KeyGovernment, fallback)
	require.Equal(t, fallback, got)

	got[0].ID = "changed"
	got[0].Tags[0] = "changed"
	assert.Equal(t, "gov-1", fallback[0].ID, "fallback must not be aliased")
	assert.Equal(t, "a", fallback[0].Tags[0], "nested fallback data must not be aliased")
}

func TestRead_MissingKey_ReturnsFallback(t *testing.T) {
	s := New(NewMemoryMedium())
	got := Read(s, KeyResearch, []record{{ID: "res-1"}})
	assert.Equal(t, []record{{ID: "res-1"}}, got)
}

func TestRead_CorruptBlob_ReturnsFallback(t *testing.T) {
	m := NewMemoryMedium()
	m.Put(KeyAPIEndpoints, "{not json", SchemaVersion)
	s := New(m)

	got := Read(s, KeyAPIEndpoints, []record{{ID: "api-1"}})
	assert.Equal(t, []record{{ID: "api-1"}}, got)
}

func TestRead_SchemaVersionMismatch_ReturnsFallback(t *testing.T) {
	m := NewMemoryMedium()
	m.Put(KeySatelliteJobs, `[{"id":"job-9"}]`, SchemaVersion+1)
	s := New(m)

	got := Read(s, KeySatelliteJobs, []record{})
	assert.Empty(t, got)
}

func TestRead_MediumError_ReturnsFallback(t *testing.T) {
	s := New(&failingMedium{loadErr: errors.New("disk unavailable")})
	got := Read(s, KeyGovernment, []record{{ID: "gov-2"}})
	assert.Equal(t, []record{{ID: "gov-2"}}, got)
}

func TestWriteThenRead_RoundTrip(t *testing.T) {
	m := NewMemoryMedium()
	s := New(m)
	value := []record{{ID: "sat-1", Tags: []string{"optical"}}}

	s.Write(KeySatelliteSources, value)

	// A fresh Store over the same medium simulates a process restart.
	restarted := New(m)
	got := Read(restarted, KeySatelliteSources, []record{})
	assert.Equal(t, value, got)

	got[0].Tags[0] = "mutated"
	again := Read(restarted, KeySatelliteSources, []record{})
	assert.Equal(t, "optical", again[0].Tags[0], "reads never alias a previous decode")
}

func TestWrite_FailureIsSwallowed(t *testing.T) {
	medium := &failingMedium{saveErr: errors.New("quota exceeded")}
	s := New(medium)

	assert.NotPanics(t, func() {
		s.Write(KeyGovernment, []record{{ID: "gov-1"}})
	})
	assert.Equal(t, 1, medium.saves)
}

func TestWrite_QuotaExceeded(t *testing.T) {
	m := NewMemoryMedium()
	m.Quota = 8
	s := New(m)

	s.Write(KeyGovernment, []record{{ID: "gov-with-a-long-id"}})

	_, _, ok, err := m.Load(KeyGovernment)
	require.NoError(t, err)
	assert.False(t, ok, "over-quota write is dropped")
}

func TestWrite_UnserializableValue(t *testing.T) {
	m := NewMemoryMedium()
	s := New(m)

	s.Write(KeyGovernment, map[string]interface{}{"bad": make(chan int)})

	_, _, ok, _ := m.Load(KeyGovernment)
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	m := NewMemoryMedium()
	s := New(m)
	s.Write(KeyResearch, []record{{ID: "res-1"}})

	s.Reset(KeyResearch)

	got := Read(s, KeyResearch, []record{})
	assert.Empty(t, got)
}

func TestAvailable(t *testing.T) {
	var nilStore *Store
	assert.False(t, nilStore.Available())
	assert.False(t, New(nil).Available())
	assert.True(t, New(NewMemoryMedium()).Available())
}

func TestClone_DeepCopy(t *testing.T) {
	src := map[string][]string{"areas": {"fisheries"}}
	dst := Clone(src)
	dst["areas"][0] = "climate"
	assert.Equal(t, "fisheries", src["areas"][0])
}
