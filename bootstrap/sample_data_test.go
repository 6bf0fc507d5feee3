package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSamples_Disabled(t *testing.T) {
	s := LoadSamples(false)
	assert.NotNil(t, s.Government)
	assert.Empty(t, s.Government)
	assert.Empty(t, s.Research)
	assert.Empty(t, s.SatelliteSources)
	assert.Empty(t, s.SatelliteJobs)
	assert.Empty(t, s.APIEndpoints)
}

func TestLoadSamples_FreshCopies(t *testing.T) {
	first := LoadSamples(true)
	first.Research[0].ResearchAreas[0] = "changed"

	second := LoadSamples(true)
	assert.Equal(t, "Fisheries modelling", second.Research[0].ResearchAreas[0])
	assert.Len(t, second.Government, 2)
	assert.Len(t, second.APIEndpoints, 2)
}

func TestLoadSamples_JobsReferenceSources(t *testing.T) {
	s := LoadSamples(true)
	ids := map[string]bool{}
	for _, src := range s.SatelliteSources {
		ids[src.ID] = true
	}
	for _, job := range s.SatelliteJobs {
		assert.True(t, ids[job.DataSourceID], "job %s references unknown source %s", job.ID, job.DataSourceID)
	}
}
