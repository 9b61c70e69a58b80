package orderrepo

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and attaches the store-assigned identifier to the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AttachID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. All mutable columns are written in one
// statement so status and the archived flag can never diverge.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// Select forces zero values (archived = false) to be written too.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("table_id", "order_date", "items", "status", "special_notes", "archived").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActive retrieves all non-archived orders.
func (r *GormOrderRepository) GetActive(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("archived = ?", false))
}

// GetArchived retrieves all archived orders.
func (r *GormOrderRepository) GetArchived(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("archived = ?", true))
}

// GetActiveByTable retrieves a table's non-archived orders, most recent
// first.
func (r *GormOrderRepository) GetActiveByTable(ctx context.Context, tableID kernel.TableID) ([]*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("table_id = ? AND archived = ?", tableID.Int(), false).
		Order("order_date DESC"))
}

// ArchiveCompleted flips the archived flag on every completed, not yet
// archived order in a single statement and reports the affected row count.
func (r *GormOrderRepository) ArchiveCompleted(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ? AND archived = ?", order.Completed.String(), false).
		Update("archived", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormOrderRepository) find(_ context.Context, db *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := db.Find(&dtos).Error; err != nil {
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
