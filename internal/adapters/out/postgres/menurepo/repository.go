package menurepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuProvider implements MenuProvider using GORM.
type GormMenuProvider struct {
	db *gorm.DB
}

// NewGormMenuProvider creates a new GORM menu provider.
func NewGormMenuProvider(db *gorm.DB) *GormMenuProvider {
	return &GormMenuProvider{db: db}
}

// GetByID retrieves a menu item by its identifier.
func (r *GormMenuProvider) GetByID(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return ports.MenuItem{}, err
	}

	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id.String())
		}
		return ports.MenuItem{}, err
	}

	return toMenuItem(dto)
}
