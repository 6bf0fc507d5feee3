package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBadger(t *testing.T, path string) *BadgerMedium {
	t.Helper()
	m, err := OpenBadgerMedium(path)
	require.NoError(t, err)
	return m
}

func TestBadgerMedium_SaveLoadRemove(t *testing.T) {
	m := openTestBadger(t, "")
	defer m.Close()

	_, _, ok, err := m.Load(KeyGovernment)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Save(KeyGovernment, []byte(`[{"id":"gov-1"}]`), SchemaVersion))

	value, version, ok, err := m.Load(KeyGovernment)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, SchemaVersion, version)
	assert.JSONEq(t, `[{"id":"gov-1"}]`, string(value))

	require.NoError(t, m.Remove(KeyGovernment))
	_, _, ok, err = m.Load(KeyGovernment)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBadgerMedium_RejectsOversizedVersion(t *testing.T) {
	m := openTestBadger(t, "")
	defer m.Close()

	assert.Error(t, m.Save(KeyResearch, []byte(`[]`), 300))
}

func TestBadgerMedium_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first := openTestBadger(t, dir)
	s := New(first)
	s.Write(KeyAPIEndpoints, []record{{ID: "api-1", Tags: []string{"tides"}}})
	require.NoError(t, first.Close())

	second := openTestBadger(t, dir)
	defer second.Close()
	got := Read(New(second), KeyAPIEndpoints, []record{})
	assert.Equal(t, []record{{ID: "api-1", Tags: []string{"tides"}}}, got)
}
