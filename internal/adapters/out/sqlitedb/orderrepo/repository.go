package orderrepo

import (
	"context"
	"encoding/json"

	"freightmatch/internal/adapters/out/sqlitedb/recordstore"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository over the orders
// record. Every mutation rewrites the whole collection document, so a
// successful Add or Update means the full collection is durable.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository bound to the given connection
// or transaction.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// load reads and decodes the stored collection. An absent or unreadable
// record degrades to an empty collection; the unreadable case is reported
// so the caller's transaction can decide.
func (r *GormOrderRepository) load(ctx context.Context) ([]OrderDTO, error) {
	raw, ok, err := recordstore.Read(r.db.WithContext(ctx), recordstore.OrdersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []OrderDTO{}, nil
	}

	var dtos []OrderDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		return []OrderDTO{}, nil
	}
	return dtos, nil
}

// save serializes the collection and writes it back as one unit.
func (r *GormOrderRepository) save(ctx context.Context, dtos []OrderDTO) error {
	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}
	return recordstore.Write(r.db.WithContext(ctx), recordstore.OrdersKey, string(raw))
}

// Add inserts a new order at the head of the collection (newest-first) and
// persists the updated collection.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return err
	}

	dtos = append([]OrderDTO{fromDomain(aggregate)}, dtos...)
	if err := r.save(ctx, dtos); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored order with the same identifier and persists
// the updated collection. Returns an ObjectNotFoundError when the
// identifier is unknown, leaving the record untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	id := aggregate.ID().String()
	for i := range dtos {
		if dtos[i].ID == id {
			dtos[i] = fromDomain(aggregate)
			replaced = true
			break
		}
	}
	if !replaced {
		return errs.NewObjectNotFoundError("order", id)
	}

	if err := r.save(ctx, dtos); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	key := id.String()
	for _, dto := range dtos {
		if dto.ID == key {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", key)
}

// GetAll returns every order in stored order, newest-first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	dtos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetActive returns the order currently in accepted status, or an
// ObjectNotFoundError when none is active.
func (r *GormOrderRepository) GetActive(ctx context.Context) (*order.Order, error) {
	dtos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.Status == order.Accepted.String() {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", "active")
}
