package catalog

import (
	"context"
	"log"
	"strings"
	"sync"
)

// Reconciler owns the client's product snapshot and the busy flag. It bridges
// user criteria to the catalog Service and replaces the snapshot wholesale
// with each successful response.
//
// Completions land on whatever goroutine issued the retrieval, so the snapshot
// is guarded by a mutex. Requests are not serialized: a new retrieval may be
// issued while an earlier one is still in flight. Each request takes a
// monotonically increasing token and a completion is applied only while its
// token is still the latest issued, so a slow stale response never overwrites
// a newer one.
type Reconciler struct {
	svc    Service
	logger *log.Logger

	mu       sync.Mutex
	products []Product
	loading  bool
	seq      uint64
}

func NewReconciler(svc Service, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{svc: svc, logger: logger}
}

// LoadAll replaces the snapshot with the full unfiltered catalog. On failure
// the previous snapshot is kept and the error is returned for user
// notification.
func (r *Reconciler) LoadAll(ctx context.Context) error {
	token := r.begin()
	products, err := r.svc.FetchAll(ctx)
	r.finish()
	if err != nil {
		r.logger.Printf("catalog fetch failed: %v", err)
		return err
	}
	r.apply(token, products)
	return nil
}

// Search replaces the snapshot with the text-search result. Empty or
// whitespace-only text behaves exactly as LoadAll. A response with an
// unexpected results shape comes back from the Service as an empty collection
// and resets the snapshot to empty rather than leaving it stale.
func (r *Reconciler) Search(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return r.LoadAll(ctx)
	}

	token := r.begin()
	products, err := r.svc.Search(ctx, text)
	r.finish()
	if err != nil {
		r.logger.Printf("catalog search %q failed: %v", text, err)
		return err
	}
	r.apply(token, products)
	return nil
}

// Filter replaces the snapshot with the structured-filter result verbatim.
func (r *Reconciler) Filter(ctx context.Context, fc FilterCriteria) error {
	token := r.begin()
	products, err := r.svc.Filter(ctx, fc)
	r.finish()
	if err != nil {
		r.logger.Printf("catalog filter failed: %v", err)
		return err
	}
	r.apply(token, products)
	return nil
}

// Refine returns the products of the current snapshot whose name or
// description contains text case-insensitively. It layers over whatever
// snapshot is loaded, server-filtered or not, and never mutates it. An empty
// text returns the full snapshot.
func (r *Reconciler) Refine(text string) []Product {
	r.mu.Lock()
	snapshot := r.products
	r.mu.Unlock()

	needle := strings.ToLower(text)
	out := make([]Product, 0, len(snapshot))
	for _, p := range snapshot {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Products returns the current snapshot.
func (r *Reconciler) Products() []Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// Busy reports whether a retrieval is in flight. It is a single shared flag:
// when retrievals overlap, the first completion clears it even though a later
// one is still running.
func (r *Reconciler) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *Reconciler) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = true
	r.seq++
	return r.seq
}

func (r *Reconciler) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
}

func (r *Reconciler) apply(token uint64, products []Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.seq {
		// A newer request was issued while this one was in flight.
		return
	}
	r.products = products
}
