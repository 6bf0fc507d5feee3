package integration

import (
	"context"
	"strings"
	"testing"

	"naraintegration/models"
	"naraintegration/services/dto"
	"naraintegration/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchService_Create_Defaults(t *testing.T) {
	svc := NewResearchService(store.New(store.NewMemoryMedium()), nil, testOptions())

	created, err := svc.Create(context.Background(), dto.ResearchInstitutionCreate{
		Name:          "Coastal Ocean Institute",
		Country:       "Sri Lanka",
		ResearchAreas: []string{"Coral reefs", " coral reefs ", "", "Tides"},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "res-"))
	assert.Equal(t, models.PartnershipPending, created.PartnershipStatus)
	assert.Equal(t, fixedNow, created.EstablishedAt)
	assert.Equal(t, []string{"Coral reefs", "Tides"}, created.ResearchAreas)
	assert.NotNil(t, created.DataSharingAgreements)
	assert.Empty(t, created.DataSharingAgreements)
}

func TestResearchService_UpdatePartnershipStatus(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	result, err := reg.Research.UpdatePartnershipStatus(ctx, "res-2", models.PartnershipActive)
	require.NoError(t, err)
	assert.Equal(t, Found, result)
	assert.Equal(t, models.PartnershipActive, reg.Research.Snapshot()[1].PartnershipStatus)

	result, err = reg.Research.UpdatePartnershipStatus(ctx, "res-9", models.PartnershipActive)
	require.NoError(t, err)
	assert.Equal(t, NotFound, result)
}

func TestResearchService_AddResearchArea(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()
	before := len(reg.Research.Snapshot()[0].ResearchAreas)

	tests := []struct {
		name  string
		area  string
		grows bool
	}{
		{name: "new area", area: "Marine spatial planning", grows: true},
		{name: "duplicate ignoring case", area: "FISHERIES MODELLING", grows: false},
		{name: "blank", area: "   ", grows: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := reg.Research.AddResearchArea(ctx, "res-1", tt.area)
			require.NoError(t, err)
			assert.Equal(t, Found, result)

			areas := reg.Research.Snapshot()[0].ResearchAreas
			if tt.grows {
				before++
			}
			assert.Len(t, areas, before)
		})
	}
	assert.Equal(t, "Marine spatial planning", reg.Research.Snapshot()[0].ResearchAreas[before-1])
}

func TestResearchService_AddDataSharingAgreement(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	result, agreement, err := reg.Research.AddDataSharingAgreement(ctx, "res-2", dto.DataSharingAgreementCreate{Title: "Argo float exchange"})
	require.NoError(t, err)
	assert.Equal(t, Found, result)
	require.NotNil(t, agreement)
	assert.True(t, strings.HasPrefix(agreement.ID, "dsa-"))
	assert.Equal(t, "pending", agreement.Status)
	assert.Nil(t, agreement.SignedAt)

	stored := reg.Research.Snapshot()[1].DataSharingAgreements
	require.NotEmpty(t, stored)
	assert.Equal(t, agreement.ID, stored[len(stored)-1].ID)

	result, agreement, err = reg.Research.AddDataSharingAgreement(ctx, "res-404", dto.DataSharingAgreementCreate{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, NotFound, result)
	assert.Nil(t, agreement)
}
