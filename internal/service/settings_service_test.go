package service_test

import (
	"testing"

	"github.com/dj1alilou/windyluxury/internal/filestore"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) service.SettingsService {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return service.NewSettingsService(store.Settings())
}

func TestGetPriceCaseInsensitive(t *testing.T) {
	svc := newSettingsService(t)
	require.NoError(t, svc.UpsertWilaya(model.DeliveryWilaya{
		Name:        "Alger",
		HomePrice:   decimal.NewFromInt(350),
		OfficePrice: decimal.NewFromInt(250),
	}))

	for _, name := range []string{"Alger", "alger", "ALGER"} {
		assert.True(t, svc.GetPrice(name, model.DeliveryHome).Equal(decimal.NewFromInt(350)), name)
		assert.True(t, svc.GetPrice(name, model.DeliveryOffice).Equal(decimal.NewFromInt(250)), name)
	}

	// Unknown wilaya and empty wilaya price at zero rather than failing.
	assert.True(t, svc.GetPrice("Atlantis", model.DeliveryHome).IsZero())
	assert.True(t, svc.GetPrice("", model.DeliveryHome).IsZero())
	// Unknown delivery type on a known wilaya also prices at zero.
	assert.True(t, svc.GetPrice("Alger", "drone").IsZero())
}

func TestSeedDefaultWilayas(t *testing.T) {
	svc := newSettingsService(t)

	added, err := svc.SeedDefaultWilayas()
	require.NoError(t, err)
	assert.Equal(t, 58, added)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Len(t, settings.DeliveryWilayas, 58)

	// Customize one price, reseed, and check it survives.
	require.NoError(t, svc.UpsertWilaya(model.DeliveryWilaya{
		Name:        "alger",
		HomePrice:   decimal.NewFromInt(400),
		OfficePrice: decimal.NewFromInt(300),
	}))

	added, err = svc.SeedDefaultWilayas()
	require.NoError(t, err)
	assert.Zero(t, added)

	assert.True(t, svc.GetPrice("Alger", model.DeliveryHome).Equal(decimal.NewFromInt(400)))

	settings, err = svc.Get()
	require.NoError(t, err)
	assert.Len(t, settings.DeliveryWilayas, 58)
}

func TestUpsertAndRemoveWilaya(t *testing.T) {
	svc := newSettingsService(t)

	require.NoError(t, svc.UpsertWilaya(model.DeliveryWilaya{Name: "Oran", HomePrice: decimal.NewFromInt(500)}))
	require.NoError(t, svc.UpsertWilaya(model.DeliveryWilaya{Name: "Blida", HomePrice: decimal.NewFromInt(300)}))

	// Upsert by name overwrites instead of duplicating.
	require.NoError(t, svc.UpsertWilaya(model.DeliveryWilaya{Name: "oran", HomePrice: decimal.NewFromInt(600)}))

	settings, err := svc.Get()
	require.NoError(t, err)
	require.Len(t, settings.DeliveryWilayas, 2)
	assert.True(t, svc.GetPrice("Oran", model.DeliveryHome).Equal(decimal.NewFromInt(600)))

	require.ErrorIs(t, svc.RemoveWilaya(5), service.ErrInvalidIndex)
	require.ErrorIs(t, svc.RemoveWilaya(-1), service.ErrInvalidIndex)

	require.NoError(t, svc.RemoveWilaya(0))
	settings, err = svc.Get()
	require.NoError(t, err)
	require.Len(t, settings.DeliveryWilayas, 1)
	assert.Equal(t, "Blida", settings.DeliveryWilayas[0].Name)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(&model.Settings{StoreName: "Windy Luxury", StorePhone: "0551925318"})
	require.NoError(t, err)

	// A partial update leaves the other fields alone.
	updated, err := svc.Update(&model.Settings{Instagram: "@windyluxury"})
	require.NoError(t, err)
	assert.Equal(t, "Windy Luxury", updated.StoreName)
	assert.Equal(t, "0551925318", updated.StorePhone)
	assert.Equal(t, "@windyluxury", updated.Instagram)
}
