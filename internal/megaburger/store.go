package megaburger

import (
	"context"
	"sort"
	"sync"

	"instafood/internal/pkg/errs"
)

// OrderStore persists backend orders. Implementations must assign a unique ID
// on Add and return orders sorted by ID from List.
type OrderStore interface {
	Add(ctx context.Context, o *Order) error
	Get(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Update(ctx context.Context, o *Order) error
}

// MemoryStore is the default in-process OrderStore. Orders do not survive a
// restart, which is acceptable for the demo deployment; use the postgres
// store when persistence matters.
type MemoryStore struct {
	mu     sync.Mutex
	orders map[int]Order
	nextID int
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[int]Order)}
}

// Add stores a new order and assigns it the next sequential ID.
func (s *MemoryStore) Add(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.orders[o.ID] = *o
	return nil
}

// Get returns the order with the given ID.
func (s *MemoryStore) Get(_ context.Context, id int) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return &o, nil
}

// List returns all orders sorted by ID.
func (s *MemoryStore) List(_ context.Context) ([]*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*Order, 0, len(s.orders))
	for id := range s.orders {
		o := s.orders[id]
		orders = append(orders, &o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// Update overwrites an existing order.
func (s *MemoryStore) Update(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; !ok {
		return errs.NewObjectNotFoundError("orderId", o.ID)
	}
	s.orders[o.ID] = *o
	return nil
}
