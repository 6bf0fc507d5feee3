package integration

import (
	"context"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/dto"
	"naraintegration/services/store"
	"naraintegration/utils"
)

// GovernmentService manages connectors to government agency databases.
type GovernmentService interface {
	GetAll(ctx context.Context) ([]models.GovernmentConnection, error)
	Create(ctx context.Context, req dto.GovernmentConnectionCreate) (*models.GovernmentConnection, error)
	// UpdateStatus sets the connection status and stamps last_synced_at.
	UpdateStatus(ctx context.Context, id string, status models.ConnectionStatus) (Result, error)
	// Update merges the non-nil fields of patch into the connection.
	Update(ctx context.Context, id string, patch dto.GovernmentConnectionPatch) (Result, error)
	Delete(ctx context.Context, id string) (Result, error)

	// Snapshot returns a copy of the collection without simulated latency.
	Snapshot() []models.GovernmentConnection
	Reset(seed []models.GovernmentConnection)
}

type governmentService struct {
	items *collection[models.GovernmentConnection]
	opts  Options
}

// NewGovernmentService loads the government collection from st, seeding it with seed when absent.
func NewGovernmentService(st *store.Store, seed []models.GovernmentConnection, opts Options) GovernmentService {
	return &governmentService{
		items: newCollection(st, store.KeyGovernment, seed, func(c *models.GovernmentConnection) string { return c.ID }),
		opts:  opts,
	}
}

func (s *governmentService) GetAll(ctx context.Context) ([]models.GovernmentConnection, error) {
	return respond(ctx, s.opts, s.items.snapshot())
}

func (s *governmentService) Create(ctx context.Context, req dto.GovernmentConnectionCreate) (*models.GovernmentConnection, error) {
	conn := models.GovernmentConnection{
		ID:                 utils.CreateID("gov"),
		Name:               req.Name,
		Description:        req.Description,
		ConnectionURL:      req.ConnectionURL,
		DataFormat:         defaultString(req.DataFormat, "json"),
		SecurityLevel:      defaultString(req.SecurityLevel, "internal"),
		SyncFrequencyHours: req.SyncFrequencyHours,
		ConnectionStatus:   req.ConnectionStatus,
		CreatedAt:          s.opts.now(),
	}
	if conn.SyncFrequencyHours == 0 {
		conn.SyncFrequencyHours = 24
	}
	if conn.ConnectionStatus == "" {
		conn.ConnectionStatus = models.ConnectionPending
	}

	created := s.items.prepend(conn)
	logger.Infof("Created government connection %s (%s)", created.ID, created.Name)
	return respond(ctx, s.opts, &created)
}

func (s *governmentService) UpdateStatus(ctx context.Context, id string, status models.ConnectionStatus) (Result, error) {
	now := s.opts.now()
	result, _ := s.items.update(id, func(c *models.GovernmentConnection) {
		c.ConnectionStatus = status
		c.LastSyncedAt = &now
	})
	logger.Debugf("Government connection %s status -> %s: %s", id, status, result)
	return respond(ctx, s.opts, result)
}

func (s *governmentService) Update(ctx context.Context, id string, patch dto.GovernmentConnectionPatch) (Result, error) {
	result, _ := s.items.update(id, func(c *models.GovernmentConnection) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.ConnectionURL != nil {
			c.ConnectionURL = *patch.ConnectionURL
		}
		if patch.DataFormat != nil {
			c.DataFormat = *patch.DataFormat
		}
		if patch.SecurityLevel != nil {
			c.SecurityLevel = *patch.SecurityLevel
		}
		if patch.SyncFrequencyHours != nil {
			c.SyncFrequencyHours = *patch.SyncFrequencyHours
		}
	})
	logger.Debugf("Government connection %s updated: %s", id, result)
	return respond(ctx, s.opts, result)
}

func (s *governmentService) Delete(ctx context.Context, id string) (Result, error) {
	result := s.items.remove(id)
	if result.OK() {
		logger.Infof("Deleted government connection %s", id)
	}
	return respond(ctx, s.opts, result)
}

func (s *governmentService) Snapshot() []models.GovernmentConnection {
	return s.items.snapshot()
}

func (s *governmentService) Reset(seed []models.GovernmentConnection) {
	s.items.reset(seed)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
