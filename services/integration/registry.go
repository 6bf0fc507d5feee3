package integration

import (
	"naraintegration/bootstrap"
	"naraintegration/pkg/logger"
	"naraintegration/services/store"
)

// Registry holds one instance of every resource service over a shared store.
type Registry struct {
	Government   GovernmentService
	Research     ResearchService
	Satellite    SatelliteService
	APIEndpoints APIEndpointService
}

// NewRegistry builds all resource services. samples seeds every collection the store does not hold yet.
func NewRegistry(st *store.Store, samples bootstrap.Samples, opts Options) *Registry {
	if !st.Available() {
		logger.Warnf("No persistence medium attached, integration data lives in memory only")
	}
	return &Registry{
		Government:   NewGovernmentService(st, samples.Government, opts),
		Research:     NewResearchService(st, samples.Research, opts),
		Satellite:    NewSatelliteService(st, samples.SatelliteSources, samples.SatelliteJobs, opts),
		APIEndpoints: NewAPIEndpointService(st, samples.APIEndpoints, opts),
	}
}

// Reset replaces every collection with samples and clears the persisted copies.
func (r *Registry) Reset(samples bootstrap.Samples) {
	r.Government.Reset(samples.Government)
	r.Research.Reset(samples.Research)
	r.Satellite.Reset(samples.SatelliteSources, samples.SatelliteJobs)
	r.APIEndpoints.Reset(samples.APIEndpoints)
	logger.Infof("Integration collections reset to sample data")
}
