package config

import (
	"context"
	"testing"

	"naraintegration/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestStartEmbeddedStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("starts an embedded SQL server")
	}
	Cfg.DBName = "nara_integration_test"

	es, err := StartEmbeddedStore(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		es.Close()
		DB = nil
	})
	require.NotNil(t, DB)
	assert.NotZero(t, es.Port)

	entry := models.StoreEntry{
		CollectionKey: "nara_integration_government",
		Value:         datatypes.JSON(`[{"id":"gov-1"}]`),
		SchemaVersion: 1,
	}
	require.NoError(t, DB.Create(&entry).Error)

	var got models.StoreEntry
	require.NoError(t, DB.Where("collection_key = ?", entry.CollectionKey).Take(&got).Error)
	assert.JSONEq(t, `[{"id":"gov-1"}]`, string(got.Value))
	assert.Equal(t, 1, got.SchemaVersion)
}

func TestGetFreePort(t *testing.T) {
	port, err := getFreePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}
