package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/booking"
	"salon-booking/internal/config"
	"salon-booking/internal/models"
)

func TestOpenStore_ClosesSQLite(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir(), StorageBackend: "sqlite"}

	kv, err := openStore(cfg)
	require.NoError(t, err)
	require.NoError(t, kv.Put("k", []byte(`"v"`)))
	require.NoError(t, closeStore(kv))

	_, err = kv.Get("k")
	assert.Error(t, err, "handle still open after close")

	reopened, err := openStore(cfg)
	require.NoError(t, err)
	defer closeStore(reopened)
	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(got))
}

func TestOpenStore_FileBackendNeedsNoClose(t *testing.T) {
	kv, err := openStore(&config.Config{DataDir: t.TempDir(), StorageBackend: "file"})
	require.NoError(t, err)
	assert.NoError(t, closeStore(kv))
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := openStore(&config.Config{DataDir: t.TempDir(), StorageBackend: "redis"})
	assert.Error(t, err)
}

func TestClearDate(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.Local)
	flow := booking.NewFlow(models.DefaultSettings(), booking.WithClock(func() time.Time { return now }))

	assert.ErrorIs(t, clearDate(flow, flow.State()), booking.ErrWrongStep)

	svc := models.DefaultServices()[0]
	require.NoError(t, flow.SelectService(svc))
	require.NoError(t, flow.SelectDate(now))

	require.NoError(t, clearDate(flow, flow.State()))
	state := flow.State()
	assert.Equal(t, booking.SelectingDateTime, flow.Step())
	require.NotNil(t, state.SelectedService)
	assert.Equal(t, svc.ID, state.SelectedService.ID)
	assert.Nil(t, state.SelectedDate)
}
