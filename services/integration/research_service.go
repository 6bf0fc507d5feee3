package integration

import (
	"context"
	"strings"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/dto"
	"naraintegration/services/store"
	"naraintegration/utils"
)

// ResearchService manages international research partners.
type ResearchService interface {
	GetAll(ctx context.Context) ([]models.ResearchInstitution, error)
	Create(ctx context.Context, req dto.ResearchInstitutionCreate) (*models.ResearchInstitution, error)
	UpdatePartnershipStatus(ctx context.Context, id string, status models.PartnershipStatus) (Result, error)
	// AddResearchArea appends area unless it is blank or already present, ignoring case.
	AddResearchArea(ctx context.Context, id, area string) (Result, error)
	AddDataSharingAgreement(ctx context.Context, id string, req dto.DataSharingAgreementCreate) (Result, *models.DataSharingAgreement, error)

	Snapshot() []models.ResearchInstitution
	Reset(seed []models.ResearchInstitution)
}

type researchService struct {
	items *collection[models.ResearchInstitution]
	opts  Options
}

// NewResearchService loads the research collection from st, seeding it with seed when absent.
func NewResearchService(st *store.Store, seed []models.ResearchInstitution, opts Options) ResearchService {
	return &researchService{
		items: newCollection(st, store.KeyResearch, seed, func(r *models.ResearchInstitution) string { return r.ID }),
		opts:  opts,
	}
}

func (s *researchService) GetAll(ctx context.Context) ([]models.ResearchInstitution, error) {
	return respond(ctx, s.opts, s.items.snapshot())
}

func (s *researchService) Create(ctx context.Context, req dto.ResearchInstitutionCreate) (*models.ResearchInstitution, error) {
	institution := models.ResearchInstitution{
		ID:                    utils.CreateID("res"),
		Name:                  req.Name,
		Country:               req.Country,
		WebsiteURL:            req.WebsiteURL,
		ContactEmail:          req.ContactEmail,
		ResearchAreas:         []string{},
		PartnershipStatus:     req.PartnershipStatus,
		EstablishedAt:         s.opts.now(),
		DataSharingAgreements: []models.DataSharingAgreement{},
	}
	if req.EstablishedAt != nil {
		institution.EstablishedAt = req.EstablishedAt.UTC()
	}
	if institution.PartnershipStatus == "" {
		institution.PartnershipStatus = models.PartnershipPending
	}
	for _, area := range req.ResearchAreas {
		institution.ResearchAreas, _ = appendArea(institution.ResearchAreas, area)
	}

	created := s.items.prepend(institution)
	logger.Infof("Created research institution %s (%s)", created.ID, created.Name)
	return respond(ctx, s.opts, &created)
}

func (s *researchService) UpdatePartnershipStatus(ctx context.Context, id string, status models.PartnershipStatus) (Result, error) {
	result, _ := s.items.update(id, func(r *models.ResearchInstitution) {
		r.PartnershipStatus = status
	})
	logger.Debugf("Research institution %s partnership -> %s: %s", id, status, result)
	return respond(ctx, s.opts, result)
}

func (s *researchService) AddResearchArea(ctx context.Context, id, area string) (Result, error) {
	result, _ := s.items.update(id, func(r *models.ResearchInstitution) {
		r.ResearchAreas, _ = appendArea(r.ResearchAreas, area)
	})
	return respond(ctx, s.opts, result)
}

func (s *researchService) AddDataSharingAgreement(ctx context.Context, id string, req dto.DataSharingAgreementCreate) (Result, *models.DataSharingAgreement, error) {
	agreement := models.DataSharingAgreement{
		ID:     utils.CreateID("dsa"),
		Title:  req.Title,
		Status: defaultString(req.Status, "pending"),
	}
	if req.SignedAt != nil {
		signed := req.SignedAt.UTC()
		agreement.SignedAt = &signed
	}

	result, _ := s.items.update(id, func(r *models.ResearchInstitution) {
		r.DataSharingAgreements = append(r.DataSharingAgreements, agreement)
	})
	if err := s.opts.Latency.Wait(ctx); err != nil {
		return result, nil, err
	}
	if !result.OK() {
		return result, nil, nil
	}
	logger.Infof("Added data sharing agreement %s to %s", agreement.ID, id)
	added := store.Clone(agreement)
	return result, &added, nil
}

func (s *researchService) Snapshot() []models.ResearchInstitution {
	return s.items.snapshot()
}

func (s *researchService) Reset(seed []models.ResearchInstitution) {
	s.items.reset(seed)
}

func appendArea(areas []string, area string) ([]string, bool) {
	area = strings.TrimSpace(area)
	if area == "" {
		return areas, false
	}
	for _, existing := range areas {
		if strings.EqualFold(existing, area) {
			return areas, false
		}
	}
	return append(areas, area), true
}
