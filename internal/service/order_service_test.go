package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/dj1alilou/windyluxury/internal/filestore"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	settings service.SettingsService
	svc      service.OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	settings := service.NewSettingsService(store.Settings())
	_, err = settings.Update(&model.Settings{
		DeliveryWilayas: []model.DeliveryWilaya{
			{Name: "Alger", HomePrice: decimal.NewFromInt(350), OfficePrice: decimal.NewFromInt(250)},
			{Name: "Oran", HomePrice: decimal.NewFromInt(500), OfficePrice: decimal.NewFromInt(400)},
		},
	})
	require.NoError(t, err)

	return &fixture{
		products: store.Products(),
		orders:   store.Orders(),
		settings: settings,
		svc:      service.NewOrderService(store.Orders(), store.Products(), settings, nil),
	}
}

func (f *fixture) addProduct(t *testing.T, p model.Product) *model.Product {
	t.Helper()
	require.NoError(t, f.products.Create(&p))
	return &p
}

func validRequest(productID string) *service.SubmitOrderRequest {
	return &service.SubmitOrderRequest{
		CustomerName:  "Amina Benali",
		CustomerPhone: "0551925318",
		Wilaya:        "Alger",
		Commune:       "Bab El Oued",
		DeliveryType:  model.DeliveryHome,
		Lines: []service.SubmitOrderLine{
			{ProductID: productID, Quantity: 2},
		},
	}
}

func TestSubmitOrderTotals(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{
		Name:  "Bague Or",
		Price: decimal.NewFromInt(5000),
		Stock: 5,
	})

	order, err := f.svc.SubmitOrder(validRequest(bague.ID))
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(10000)), "subtotal %s", order.Subtotal)
	assert.True(t, order.DeliveryPrice.Equal(decimal.NewFromInt(350)), "delivery %s", order.DeliveryPrice)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(10350)), "total %s", order.Total)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.NotEmpty(t, order.ID)

	// Line snapshots the product at order time.
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Bague Or", order.Lines[0].Title)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.NewFromInt(5000)))

	// Stock decremented.
	got, err := f.products.FindByID(bague.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
}

func TestSubmitOrderValidation(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 5})

	cases := []struct {
		name       string
		mutate     func(r *service.SubmitOrderRequest)
		wantErr    error
		validation bool
	}{
		{"missing name", func(r *service.SubmitOrderRequest) { r.CustomerName = "  " }, service.ErrNameRequired, true},
		{"bad phone", func(r *service.SubmitOrderRequest) { r.CustomerPhone = "0123456789" }, service.ErrInvalidPhone, true},
		{"bad second phone", func(r *service.SubmitOrderRequest) { r.CustomerPhone2 = "55192531" }, service.ErrInvalidPhone, true},
		{"missing wilaya", func(r *service.SubmitOrderRequest) { r.Wilaya = "" }, service.ErrWilayaRequired, true},
		{"missing commune", func(r *service.SubmitOrderRequest) { r.Commune = "" }, service.ErrCommuneRequired, true},
		{"no products", func(r *service.SubmitOrderRequest) { r.Lines = nil }, service.ErrEmptyOrder, true},
		{"zero quantity", func(r *service.SubmitOrderRequest) { r.Lines[0].Quantity = 0 }, service.ErrInvalidQuantity, true},
		// Unknown products reject the order but are not in the 400 class:
		// direct product lookups map them to 404.
		{"unknown product", func(r *service.SubmitOrderRequest) { r.Lines[0].ProductID = "nope" }, service.ErrProductNotFound, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(bague.ID)
			tc.mutate(req)
			_, err := f.svc.SubmitOrder(req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.validation, service.IsValidationError(err))
		})
	}

	// Nothing was decremented by any failed attempt.
	got, err := f.products.FindByID(bague.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestSubmitOrderPhoneSpacesAccepted(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 5})

	req := validRequest(bague.ID)
	req.CustomerPhone = "0551 92 53 18"
	_, err := f.svc.SubmitOrder(req)
	require.NoError(t, err)
}

func TestSubmitOrderSizeVariants(t *testing.T) {
	f := newFixture(t)
	parure := f.addProduct(t, model.Product{
		Name:  "Parure Perle",
		Price: decimal.NewFromInt(8000),
		Stock: 99, // ignored once variants exist
		SizeVariants: []model.SizeVariant{
			{Size: "S", Stock: 3},
			{Size: "M", Stock: 0},
		},
	})

	req := validRequest(parure.ID)
	req.Lines[0].Quantity = 1

	// Size omitted on a sized product.
	_, err := f.svc.SubmitOrder(req)
	require.ErrorIs(t, err, service.ErrSizeRequired)

	// Exhausted variant, even though the other size has stock.
	req.Lines[0].Size = "M"
	_, err = f.svc.SubmitOrder(req)
	require.ErrorIs(t, err, service.ErrOutOfStock)

	// Catalog untouched by the rejections.
	got, err := f.products.FindByID(parure.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.SizeVariants[0].Stock)

	// Available variant goes through and only that variant moves.
	req.Lines[0].Size = "S"
	order, err := f.svc.SubmitOrder(req)
	require.NoError(t, err)
	assert.Equal(t, "S", order.Lines[0].Size)

	got, err = f.products.FindByID(parure.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SizeVariants[0].Stock)
	assert.Equal(t, 0, got.SizeVariants[1].Stock)
	assert.Equal(t, 99, got.Stock)
}

func TestSubmitOrderColorSurcharge(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{
		Name:  "Bague Or",
		Price: decimal.NewFromInt(5000),
		Stock: 10,
		Colors: []model.ColorVariant{
			{Name: "Or Rose", Price: decimal.NewFromInt(500)},
			{Name: "Argent"},
		},
	})

	// Priced color: the surcharge lands in the unit price and subtotal.
	req := validRequest(bague.ID)
	req.Lines[0].Color = "Or Rose"
	order, err := f.svc.SubmitOrder(req)
	require.NoError(t, err)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.NewFromInt(5500)), "unit %s", order.Lines[0].UnitPrice)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(11000)), "subtotal %s", order.Subtotal)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(11350)), "total %s", order.Total)

	// Free color and unknown color both charge the base price.
	for _, color := range []string{"Argent", "Inexistant", ""} {
		req := validRequest(bague.ID)
		req.Lines[0].Color = color
		order, err := f.svc.SubmitOrder(req)
		require.NoError(t, err)
		assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.NewFromInt(5000)), "color %q", color)
	}
}

func TestSubmitOrderInsufficientStockAllOrNothing(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 5})
	montre := f.addProduct(t, model.Product{Name: "Montre", Price: decimal.NewFromInt(12000), Stock: 1})

	req := validRequest(bague.ID)
	req.Lines = []service.SubmitOrderLine{
		{ProductID: bague.ID, Quantity: 2},
		{ProductID: montre.ID, Quantity: 3},
	}

	_, err := f.svc.SubmitOrder(req)
	require.ErrorIs(t, err, service.ErrOutOfStock)

	// First line must not have been applied.
	got, err := f.products.FindByID(bague.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 10})

	order, err := f.svc.SubmitOrder(validRequest(bague.ID))
	require.NoError(t, err)

	// pending -> processing -> pending -> completed is a legal path.
	for _, next := range []model.OrderStatus{model.OrderProcessing, model.OrderPending, model.OrderCompleted} {
		updated, err := f.svc.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// completed is terminal.
	_, err = f.svc.UpdateStatus(order.ID, model.OrderPending)
	require.ErrorIs(t, err, service.ErrStatusConflict)

	// Same-status update is a no-op, not a conflict.
	updated, err := f.svc.UpdateStatus(order.ID, model.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCompleted, updated.Status)

	_, err = f.svc.UpdateStatus(order.ID, "shipped")
	require.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = f.svc.UpdateStatus("missing", model.OrderProcessing)
	require.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestCancellationDoesNotRestock(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 5})

	order, err := f.svc.SubmitOrder(validRequest(bague.ID))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(order.ID, model.OrderCancelled)
	require.NoError(t, err)

	got, err := f.products.FindByID(bague.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
}

func TestExportZRExpressExcludesCancelled(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 50})

	kept, err := f.svc.SubmitOrder(validRequest(bague.ID))
	require.NoError(t, err)
	cancelled, err := f.svc.SubmitOrder(validRequest(bague.ID))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(cancelled.ID, model.OrderCancelled)
	require.NoError(t, err)

	csv, err := f.svc.ExportZRExpress(nil)
	require.NoError(t, err)
	assert.Contains(t, csv, kept.ID)
	assert.NotContains(t, csv, cancelled.ID)

	// Id filter narrows further.
	csv, err = f.svc.ExportZRExpress([]string{"nothing-matches"})
	require.NoError(t, err)
	assert.Equal(t, 1, len(strings.Split(csv, "\n")), "header only")
}

func TestPruneOrdersKeepsFreshOnes(t *testing.T) {
	f := newFixture(t)
	bague := f.addProduct(t, model.Product{Name: "Bague Or", Price: decimal.NewFromInt(5000), Stock: 1000})

	for i := 0; i < 120; i++ {
		_, err := f.svc.SubmitOrder(validRequest(bague.ID))
		require.NoError(t, err)
	}

	// All 120 were just created; the overflow beyond 100 is younger than
	// the retention age, so nothing goes.
	deleted, err := f.svc.PruneOrders(time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// Pretend it is far in the future: everything beyond the newest 100 is
	// now stale.
	deleted, err = f.svc.PruneOrders(time.Now().Add(48 * time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 20, deleted)

	orders, err := f.svc.ListOrders("")
	require.NoError(t, err)
	assert.Len(t, orders, 100)
}
