package integration

import (
	"context"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/dto"
	"naraintegration/services/store"
	"naraintegration/utils"
)

// SatelliteService manages satellite feeds and the processing jobs run against them.
type SatelliteService interface {
	GetAllSources(ctx context.Context) ([]models.SatelliteDataSource, error)
	CreateSource(ctx context.Context, req dto.SatelliteSourceCreate) (*models.SatelliteDataSource, error)
	UpdateSourceStatus(ctx context.Context, id, status string) (Result, error)
	// RecordIngestion stamps last_ingested_at on the source.
	RecordIngestion(ctx context.Context, id string) (Result, error)

	// GetProcessingJobs returns every job joined with its data source.
	GetProcessingJobs(ctx context.Context) ([]models.ProcessingJobView, error)
	CreateProcessingJob(ctx context.Context, req dto.ProcessingJobCreate) (*models.SatelliteProcessingJob, error)
	// UpdateProcessingStatus moves a job to status. errorMessage is kept only when status is error.
	UpdateProcessingStatus(ctx context.Context, id string, status models.ProcessingStatus, errorMessage *string) (Result, error)

	SnapshotSources() []models.SatelliteDataSource
	Reset(sources []models.SatelliteDataSource, jobs []models.SatelliteProcessingJob)
}

type satelliteService struct {
	sources *collection[models.SatelliteDataSource]
	jobs    *collection[models.SatelliteProcessingJob]
	opts    Options
}

// NewSatelliteService loads both satellite collections from st.
func NewSatelliteService(st *store.Store, sources []models.SatelliteDataSource, jobs []models.SatelliteProcessingJob, opts Options) SatelliteService {
	return &satelliteService{
		sources: newCollection(st, store.KeySatelliteSources, sources, func(s *models.SatelliteDataSource) string { return s.ID }),
		jobs:    newCollection(st, store.KeySatelliteJobs, jobs, func(j *models.SatelliteProcessingJob) string { return j.ID }),
		opts:    opts,
	}
}

func (s *satelliteService) GetAllSources(ctx context.Context) ([]models.SatelliteDataSource, error) {
	return respond(ctx, s.opts, s.sources.snapshot())
}

func (s *satelliteService) CreateSource(ctx context.Context, req dto.SatelliteSourceCreate) (*models.SatelliteDataSource, error) {
	source := models.SatelliteDataSource{
		ID:                     utils.CreateID("sat"),
		SatelliteName:          req.SatelliteName,
		SatelliteType:          defaultString(req.SatelliteType, models.SatelliteEarthObservation),
		OperatorOrganization:   req.OperatorOrganization,
		DataFeedURL:            req.DataFeedURL,
		APIEndpoint:            req.APIEndpoint,
		DataProduct:            req.DataProduct,
		ResolutionMeters:       req.ResolutionMeters,
		CoverageArea:           req.CoverageArea,
		UpdateFrequencyMinutes: req.UpdateFrequencyMinutes,
		Status:                 defaultString(req.Status, "pending"),
		CreatedAt:              s.opts.now(),
	}

	created := s.sources.prepend(source)
	logger.Infof("Created satellite data source %s (%s)", created.ID, created.SatelliteName)
	return respond(ctx, s.opts, &created)
}

func (s *satelliteService) UpdateSourceStatus(ctx context.Context, id, status string) (Result, error) {
	result, _ := s.sources.update(id, func(src *models.SatelliteDataSource) {
		src.Status = status
	})
	logger.Debugf("Satellite source %s status -> %s: %s", id, status, result)
	return respond(ctx, s.opts, result)
}

func (s *satelliteService) RecordIngestion(ctx context.Context, id string) (Result, error) {
	now := s.opts.now()
	result, _ := s.sources.update(id, func(src *models.SatelliteDataSource) {
		src.LastIngestedAt = &now
	})
	return respond(ctx, s.opts, result)
}

func (s *satelliteService) GetProcessingJobs(ctx context.Context) ([]models.ProcessingJobView, error) {
	jobs := s.jobs.snapshot()
	sources := s.sources.snapshot()

	byID := make(map[string]int, len(sources))
	for i := range sources {
		byID[sources[i].ID] = i
	}

	views := make([]models.ProcessingJobView, 0, len(jobs))
	for _, job := range jobs {
		view := models.ProcessingJobView{SatelliteProcessingJob: job}
		if i, ok := byID[job.DataSourceID]; ok {
			src := sources[i]
			view.DataSource = &src
		}
		views = append(views, view)
	}
	return respond(ctx, s.opts, views)
}

func (s *satelliteService) CreateProcessingJob(ctx context.Context, req dto.ProcessingJobCreate) (*models.SatelliteProcessingJob, error) {
	job := models.SatelliteProcessingJob{
		ID:               utils.CreateID("job"),
		DataSourceID:     req.DataSourceID,
		JobName:          req.JobName,
		ProcessingType:   req.ProcessingType,
		InputParameters:  req.InputParameters,
		ProcessingStatus: models.ProcessingQueued,
		SubmittedAt:      s.opts.now(),
	}
	if _, ok := s.sources.find(req.DataSourceID); !ok {
		logger.Warnf("Processing job %s references unknown data source %s", job.ID, req.DataSourceID)
	}

	created := s.jobs.prepend(job)
	logger.Infof("Queued processing job %s (%s)", created.ID, created.JobName)
	return respond(ctx, s.opts, &created)
}

func (s *satelliteService) UpdateProcessingStatus(ctx context.Context, id string, status models.ProcessingStatus, errorMessage *string) (Result, error) {
	now := s.opts.now()
	result, _ := s.jobs.update(id, func(j *models.SatelliteProcessingJob) {
		j.ProcessingStatus = status
		switch status {
		case models.ProcessingRunning:
			if j.StartedAt == nil {
				j.StartedAt = &now
			}
		case models.ProcessingCompleted:
			j.CompletedAt = &now
		}
		j.ErrorMessage = nil
		if status == models.ProcessingError && errorMessage != nil {
			msg := *errorMessage
			j.ErrorMessage = &msg
		}
	})
	logger.Debugf("Processing job %s status -> %s: %s", id, status, result)
	return respond(ctx, s.opts, result)
}

func (s *satelliteService) SnapshotSources() []models.SatelliteDataSource {
	return s.sources.snapshot()
}

func (s *satelliteService) Reset(sources []models.SatelliteDataSource, jobs []models.SatelliteProcessingJob) {
	s.sources.reset(sources)
	s.jobs.reset(jobs)
}
