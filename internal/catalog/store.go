package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sabinstha/brewdash/internal/api"
)

// ErrMutationInFlight is returned when a second create/update/delete is
// attempted on an entity whose previous mutation has not settled yet.
var ErrMutationInFlight = errors.New("a mutation for this product is already in flight")

// Store owns the resolved catalog plus the filter and pagination state over
// it. Mutations are write-then-reconcile: the API call runs first and the
// in-memory collection changes only on confirmed success, so a failure never
// leaves a phantom row behind.
type Store struct {
	api      *api.Client
	resolver *Resolver
	validate *validator.Validate

	mu              sync.Mutex
	snap            *Snapshot
	filter          Filter
	page            Page
	lastFilteredLen int

	// refresh staleness tagging: results from a refresh that is no longer
	// the latest issued are discarded
	issuedGen  uint64
	appliedGen uint64

	inflight map[string]struct{}
}

func NewStore(client *api.Client, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Store{
		api:             client,
		resolver:        NewResolver(client),
		validate:        validator.New(),
		page:            Page{Index: 1, Size: pageSize},
		lastFilteredLen: -1,
		inflight:        make(map[string]struct{}),
	}
}

// Refresh resolves the catalog and installs the result, unless a newer
// refresh was issued while this one was on the wire.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issuedGen++
	gen := s.issuedGen
	s.mu.Unlock()

	snap, err := s.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.issuedGen || gen <= s.appliedGen {
		// a later refresh won the race, keep its result
		return nil
	}
	s.appliedGen = gen
	s.snap = snap
	return nil
}

// Loaded reports whether a catalog has been resolved yet.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap != nil
}

// Snapshot returns the last resolved catalog, or nil before the first
// refresh.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// SetFilter replaces the filter state. The page index resets lazily on the
// next VisibleProducts call if the filtered set size changed.
func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// SetPage moves to the given 1-based page index.
func (s *Store) SetPage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Index = index
}

// VisibleProducts applies the current filter and pagination and returns the
// visible page. Whenever the filtered set size changes the page index resets
// to 1, so shrinking a result set never strands the operator on an empty
// page.
func (s *Store) VisibleProducts() (items []Product, pageIndex, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []Product
	if s.snap != nil {
		products = s.snap.Products
	}

	filtered := s.filter.Apply(products)
	if s.lastFilteredLen >= 0 && len(filtered) != s.lastFilteredLen {
		s.page.Index = 1
	}
	s.lastFilteredLen = len(filtered)
	s.page = s.page.Clamp(len(filtered))

	items, totalPages = Paginate(filtered, s.page)
	return items, s.page.Index, totalPages
}

// Create validates the draft, posts it, and appends the server's record to
// the collection after re-joining it against the current categories and
// subcategories.
func (s *Store) Create(ctx context.Context, draft Draft) (Product, error) {
	if err := s.validate.Struct(draft); err != nil {
		return Product{}, fmt.Errorf("invalid product: %w", err)
	}

	resp, err := s.api.Post(ctx, "/api/products/", draft)
	if err != nil {
		return Product{}, err
	}

	var raw RawProduct
	if err := resp.Decode(&raw); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.rejoin(raw)
	if s.snap != nil {
		s.snap.Products = append(s.snap.Products, p)
	}
	return p, nil
}

// Update patches the product and replaces the matching collection entry with
// the re-joined server response. A concurrent mutation on the same id is
// rejected.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (Product, error) {
	if err := s.acquire(id); err != nil {
		return Product{}, err
	}
	defer s.release(id)

	resp, err := s.api.Patch(ctx, "/api/products/"+id+"/", patch)
	if err != nil {
		return Product{}, err
	}

	var raw RawProduct
	if err := resp.Decode(&raw); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.rejoin(raw)
	if s.snap != nil {
		for i := range s.snap.Products {
			if s.snap.Products[i].ID == id {
				s.snap.Products[i] = p
				break
			}
		}
	}
	return p, nil
}

// Remove deletes the product remotely and, only on success, filters it out
// of the collection by identity.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.acquire(id); err != nil {
		return err
	}
	defer s.release(id)

	if _, err := s.api.Delete(ctx, "/api/products/"+id+"/"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil
	}
	kept := s.snap.Products[:0]
	for _, p := range s.snap.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.snap.Products = kept
	return nil
}

// rejoin maps a mutation response through the same join used at resolution
// time so its category labels reflect the current snapshot. Callers hold the
// lock.
func (s *Store) rejoin(raw RawProduct) Product {
	if s.snap == nil {
		return MapProduct(raw, nil, nil)
	}
	return MapProduct(raw, s.snap.subsByID, s.snap.catsByID)
}

func (s *Store) acquire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return ErrMutationInFlight
	}
	s.inflight[id] = struct{}{}
	return nil
}

func (s *Store) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}
