package session_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsef3300/ecom-site/catalog"
	"github.com/monsef3300/ecom-site/order"
	"github.com/monsef3300/ecom-site/profile"
	"github.com/monsef3300/ecom-site/session"
)

type fakeCatalogService struct {
	products []catalog.Product
	err      error
}

func (f *fakeCatalogService) FetchAll(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogService) Search(context.Context, string) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogService) Filter(context.Context, catalog.FilterCriteria) ([]catalog.Product, error) {
	return f.products, f.err
}

type fakeProvider struct {
	user       *profile.User
	prof       *profile.Profile
	refreshRes profile.Result
	logoutRes  profile.Result
}

func (f *fakeProvider) CurrentUser() *profile.User { return f.user }

func (f *fakeProvider) Profile() *profile.Profile { return f.prof }

func (f *fakeProvider) Logout(context.Context) profile.Result { return f.logoutRes }

func (f *fakeProvider) Refresh(context.Context) profile.Result { return f.refreshRes }

func newSession(svc catalog.Service) *session.Session {
	return session.New(svc, &fakeProvider{refreshRes: profile.OK(), logoutRes: profile.OK()},
		log.New(io.Discard, "", 0))
}

func TestCheckoutFlow(t *testing.T) {
	s := newSession(&fakeCatalogService{})

	s.AddToCart(catalog.Product{ID: 1, Name: "Mouse", Price: 10})
	s.AddToCart(catalog.Product{ID: 1, Name: "Mouse", Price: 10})
	s.AddToCart(catalog.Product{ID: 2, Name: "Cable", Price: 5})

	require.Equal(t, 25.0, s.Cart.Total())

	o, err := s.Checkout()
	require.NoError(t, err)

	assert.Equal(t, 25.0, o.Total)
	assert.Equal(t, 0, s.Cart.Len())
	require.Equal(t, 1, s.Orders.Len())
	assert.Equal(t, o.ID, s.Orders.Orders()[0].ID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newSession(&fakeCatalogService{})

	o, err := s.Checkout()

	require.ErrorIs(t, err, order.ErrEmptyCart)
	assert.Nil(t, o)
	assert.Equal(t, 0, s.Orders.Len())
}

func TestQuantityManagement(t *testing.T) {
	s := newSession(&fakeCatalogService{})

	s.AddToCart(catalog.Product{ID: 1, Name: "Mouse", Price: 10})
	s.SetQuantity(1, 4)
	assert.Equal(t, 40.0, s.Cart.Total())

	s.SetQuantity(1, 0)
	assert.Equal(t, 0, s.Cart.Len())

	s.AddToCart(catalog.Product{ID: 2, Name: "Cable", Price: 5})
	s.RemoveFromCart(2)
	assert.Equal(t, 0, s.Cart.Len())
}

func TestProducts(t *testing.T) {
	svc := &fakeCatalogService{products: []catalog.Product{
		{ID: 1, Name: "Mouse", Description: "Wireless mouse"},
		{ID: 2, Name: "Keyboard", Description: "Mechanical keyboard"},
	}}
	s := newSession(svc)
	require.NoError(t, s.Catalog.LoadAll(context.Background()))

	assert.Len(t, s.Products(""), 2)

	got := s.Products("keyb")
	require.Len(t, got, 1)
	assert.Equal(t, "Keyboard", got[0].Name)
}

func TestRefreshProfile(t *testing.T) {
	t.Run("failure is surfaced and leaves state untouched", func(t *testing.T) {
		provider := &fakeProvider{refreshRes: profile.Fail("token expired")}
		svc := &fakeCatalogService{products: []catalog.Product{{ID: 1, Name: "Mouse"}}}
		s := session.New(svc, provider, log.New(io.Discard, "", 0))
		require.NoError(t, s.Catalog.LoadAll(context.Background()))
		s.AddToCart(catalog.Product{ID: 1, Name: "Mouse", Price: 10})

		res := s.RefreshProfile(context.Background())

		assert.False(t, res.Success)
		assert.Equal(t, "token expired", res.Error)
		assert.Equal(t, 1, s.Cart.Len())
		assert.Len(t, s.Catalog.Products(), 1)
	})

	t.Run("success passes through", func(t *testing.T) {
		s := newSession(&fakeCatalogService{})
		assert.True(t, s.RefreshProfile(context.Background()).Success)
	})
}

func TestCatalogFailureSurfacesToCaller(t *testing.T) {
	svc := &fakeCatalogService{err: errors.New("catalog down")}
	s := newSession(svc)

	err := s.Catalog.LoadAll(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Catalog.Products())
}
