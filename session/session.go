// Package session ties the storefront engine together. One Session exists per
// signed-in shopper and owns that shopper's cart, catalog snapshot and order
// history; nothing here is shared across sessions and nothing survives the
// session.
package session

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/monsef3300/ecom-site/cart"
	"github.com/monsef3300/ecom-site/catalog"
	"github.com/monsef3300/ecom-site/config"
	"github.com/monsef3300/ecom-site/order"
	"github.com/monsef3300/ecom-site/profile"
)

// Session is the explicit session-scoped context object. The UI layer calls
// into it for every user action; there are no ambient singletons.
type Session struct {
	Catalog *catalog.Reconciler
	Cart    *cart.Cart
	Orders  *order.History
	Profile profile.Provider

	logger *log.Logger
}

// New wires a session over an arbitrary catalog Service and identity
// provider.
func New(svc catalog.Service, provider profile.Provider, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lmicroseconds)
	}
	return &Session{
		Catalog: catalog.NewReconciler(svc, logger),
		Cart:    cart.New(),
		Orders:  order.NewHistory(),
		Profile: provider,
		logger:  logger,
	}
}

// NewFromConfig is the production setup: a traced HTTP client with the
// configured upstream timeout, a breaker-wrapped catalog client, and a fresh
// session over them.
func NewFromConfig(cfg config.Config, provider profile.Provider, logger *log.Logger) *Session {
	httpClient := &http.Client{
		Timeout:   cfg.UpstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	svc := catalog.NewHTTPClient(cfg.CatalogURL, httpClient,
		catalog.WithBreaker(gobreakerSettings()))
	return New(svc, provider, logger)
}

func gobreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:    "catalog-service",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// AddToCart puts one unit of the product into the cart.
func (s *Session) AddToCart(p catalog.Product) {
	s.Cart.Add(p)
	s.logger.Printf("added to cart: %s (product %d)", p.Name, p.ID)
}

// RemoveFromCart deletes the product's cart line if present.
func (s *Session) RemoveFromCart(productID int64) {
	s.Cart.Remove(productID)
}

// SetQuantity updates a cart line's quantity; below 1 removes the line.
func (s *Session) SetQuantity(productID int64, quantity int) {
	s.Cart.SetQuantity(productID, quantity)
}

// Checkout snapshots the cart into a new pending order, clears the cart and
// records the order in the session history. An empty cart returns
// order.ErrEmptyCart and changes nothing.
func (s *Session) Checkout() (*order.Order, error) {
	o, err := s.Orders.Checkout(s.Cart)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("order %s placed: %d items, total %.2f", o.ID, len(o.Items), o.Total)
	return o, nil
}

// Products is the displayed product list: the current catalog snapshot
// narrowed by the local refinement text. An empty text shows the full
// snapshot.
func (s *Session) Products(localText string) []catalog.Product {
	return s.Catalog.Refine(localText)
}

// RefreshProfile asks the identity provider to reload the profile. Failure is
// surfaced in the Result and leaves cart and catalog state untouched.
func (s *Session) RefreshProfile(ctx context.Context) profile.Result {
	res := s.Profile.Refresh(ctx)
	if !res.Success {
		s.logger.Printf("profile refresh failed: %s", res.Error)
	}
	return res
}

// Logout signs the user out via the identity provider.
func (s *Session) Logout(ctx context.Context) profile.Result {
	return s.Profile.Logout(ctx)
}
