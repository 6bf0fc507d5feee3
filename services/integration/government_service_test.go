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

func TestGovernmentService_GetAll_Samples(t *testing.T) {
	reg, _ := newTestRegistry()

	got, err := reg.Government.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "gov-1", got[0].ID)
	assert.Equal(t, models.ConnectionMaintenance, got[1].ConnectionStatus)
}

func TestGovernmentService_Create_AppliesDefaults(t *testing.T) {
	reg, medium := newTestRegistry()
	ctx := context.Background()

	created, err := reg.Government.Create(ctx, dto.GovernmentConnectionCreate{
		Name:          "Harbour traffic registry",
		ConnectionURL: "https://ports.gov.example/api",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "gov-"))
	assert.Equal(t, models.ConnectionPending, created.ConnectionStatus)
	assert.Equal(t, 24, created.SyncFrequencyHours)
	assert.Equal(t, "json", created.DataFormat)
	assert.Equal(t, "internal", created.SecurityLevel)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Nil(t, created.LastSyncedAt)

	all, _ := reg.Government.GetAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, created.ID, all[0].ID, "new records are prepended")

	persisted := store.Read(store.New(medium), store.KeyGovernment, []models.GovernmentConnection{})
	require.Len(t, persisted, 3)
	assert.Equal(t, created.ID, persisted[0].ID)
}

func TestGovernmentService_Create_NoClamping(t *testing.T) {
	svc := NewGovernmentService(store.New(nil), nil, testOptions())

	created, err := svc.Create(context.Background(), dto.GovernmentConnectionCreate{Name: "x", SyncFrequencyHours: 400})
	require.NoError(t, err)
	assert.Equal(t, 400, created.SyncFrequencyHours)
}

func TestGovernmentService_Create_ReturnsCopy(t *testing.T) {
	svc := NewGovernmentService(store.New(nil), nil, testOptions())

	created, err := svc.Create(context.Background(), dto.GovernmentConnectionCreate{Name: "original"})
	require.NoError(t, err)
	created.Name = "mutated by caller"

	assert.Equal(t, "original", svc.Snapshot()[0].Name)
}

func TestGovernmentService_UpdateStatus(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	result, err := reg.Government.UpdateStatus(ctx, "gov-2", models.ConnectionActive)
	require.NoError(t, err)
	assert.Equal(t, Found, result)

	all, _ := reg.Government.GetAll(ctx)
	assert.Equal(t, models.ConnectionActive, all[1].ConnectionStatus)
	require.NotNil(t, all[1].LastSyncedAt)
	assert.Equal(t, fixedNow, *all[1].LastSyncedAt)
}

func TestGovernmentService_UpdateStatus_NotFound(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()
	before, _ := reg.Government.GetAll(ctx)

	result, err := reg.Government.UpdateStatus(ctx, "gov-404", models.ConnectionError)
	require.NoError(t, err)
	assert.Equal(t, NotFound, result)

	after, _ := reg.Government.GetAll(ctx)
	assert.Equal(t, before, after)
}

func TestGovernmentService_Update_MergesNonNilFields(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()
	before := reg.Government.Snapshot()[0]

	result, err := reg.Government.Update(ctx, "gov-1", dto.GovernmentConnectionPatch{
		Description:        ptr("Nightly vessel registry sync"),
		SyncFrequencyHours: ptr(12),
	})
	require.NoError(t, err)
	assert.True(t, result.OK())

	after := reg.Government.Snapshot()[0]
	assert.Equal(t, "Nightly vessel registry sync", after.Description)
	assert.Equal(t, 12, after.SyncFrequencyHours)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.ConnectionURL, after.ConnectionURL)
	assert.Equal(t, before.ConnectionStatus, after.ConnectionStatus)
}

func TestGovernmentService_Delete(t *testing.T) {
	reg, medium := newTestRegistry()
	ctx := context.Background()

	result, err := reg.Government.Delete(ctx, "gov-1")
	require.NoError(t, err)
	assert.Equal(t, Found, result)

	result, err = reg.Government.Delete(ctx, "gov-1")
	require.NoError(t, err)
	assert.Equal(t, NotFound, result)

	all, _ := reg.Government.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "gov-2", all[0].ID)

	persisted := store.Read(store.New(medium), store.KeyGovernment, []models.GovernmentConnection{})
	assert.Len(t, persisted, 1)
}
