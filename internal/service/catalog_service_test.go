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

func newCatalogService(t *testing.T) service.CatalogService {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return service.NewCatalogService(store.Products(), store.Categories(), nil)
}

func TestCreateProductDefaultsToActive(t *testing.T) {
	svc := newCatalogService(t)

	p := &model.Product{Name: "Collier Argent", Price: decimal.NewFromInt(3500), Stock: 4}
	require.NoError(t, svc.CreateProduct(p))
	assert.Equal(t, model.ProductActive, p.Status)
	assert.NotEmpty(t, p.ID)

	got, err := svc.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Collier Argent", got.Name)
}

func TestCreateProductRejectsBadValues(t *testing.T) {
	svc := newCatalogService(t)

	err := svc.CreateProduct(&model.Product{Name: "Bague", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, service.ErrInvalidPrice)

	err = svc.CreateProduct(&model.Product{Name: "Bague", Price: decimal.NewFromInt(100), Stock: -2})
	require.ErrorIs(t, err, service.ErrInvalidStock)

	err = svc.CreateProduct(&model.Product{
		Name:         "Bague",
		Price:        decimal.NewFromInt(100),
		SizeVariants: []model.SizeVariant{{Size: "S", Stock: -1}},
	})
	require.ErrorIs(t, err, service.ErrInvalidStock)

	err = svc.CreateProduct(&model.Product{Price: decimal.NewFromInt(100)})
	require.Error(t, err, "missing name")
}

func TestListProductsByStatus(t *testing.T) {
	svc := newCatalogService(t)

	require.NoError(t, svc.CreateProduct(&model.Product{Name: "A", Price: decimal.NewFromInt(1)}))
	require.NoError(t, svc.CreateProduct(&model.Product{Name: "B", Price: decimal.NewFromInt(1), Status: model.ProductInactive}))

	all, err := svc.ListProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListProducts("active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A", active[0].Name)
}

func TestDeleteProductReturnsIt(t *testing.T) {
	svc := newCatalogService(t)

	p := &model.Product{
		Name:   "Montre",
		Price:  decimal.NewFromInt(12000),
		Images: []model.Image{{URL: "/uploads/products/x", PublicID: "products/x"}},
	}
	require.NoError(t, svc.CreateProduct(p))

	deleted, err := svc.DeleteProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, deleted.Images, 1)
	assert.Equal(t, "products/x", deleted.Images[0].PublicID)

	_, err = svc.GetProduct(p.ID)
	require.ErrorIs(t, err, service.ErrProductNotFound)

	_, err = svc.DeleteProduct(p.ID)
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestListCategoriesFallsBackToDefaults(t *testing.T) {
	svc := newCatalogService(t)

	// Nothing seeded: the compiled-in six categories come back.
	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Parure", categories[0].Name)
}
