package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	maxTables int
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// maxTables bounds table numbers accepted when restoring persisted orders.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, maxTables int) *GormOrderRepository {
	return &GormOrderRepository{
		db:        db,
		tracker:   tracker,
		maxTables: maxTables,
	}
}

// Add saves a new order to the database together with its items.
// A duplicate order ID or order number is reported as a concurrent
// modification, since it means another writer got there first.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConcurrentModificationErrorWithCause("orderId", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order guarded by its expected status. The write
// applies only if the stored row is still in expectedStatus; a lost race
// surfaces as errs.ErrConcurrentModification and a missing row as
// errs.ErrObjectNotFound.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Select("status", "kitchen_status", "cancel_reason", "expected_completion_at", "completed_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	// Item rows only ever change in lockstep with the order's kitchen status.
	err := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
		Where("order_id = ?", dto.ID).
		Update("status", dto.KitchenStatus).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a lost optimistic-concurrency race from
// an order that never existed.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return errs.NewConcurrentModificationError("orderId", id.String())
}

// Get retrieves an order by ID, including its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.maxTables)
}
