package megaburgerrepo

import (
	"context"
	"errors"

	"instafood/internal/megaburger"
	"instafood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements megaburger.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a postgres order store and migrates its table.
func NewGormOrderStore(db *gorm.DB) (*GormOrderStore, error) {
	if err := db.AutoMigrate(&OrderDTO{}); err != nil {
		return nil, err
	}
	return &GormOrderStore{db: db}, nil
}

// Add saves a new order and assigns its generated ID.
func (s *GormOrderStore) Add(ctx context.Context, o *megaburger.Order) error {
	dto := fromDomain(o)
	dto.ID = 0
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	o.ID = dto.ID
	return nil
}

// Get retrieves an order by ID.
func (s *GormOrderStore) Get(ctx context.Context, id int) (*megaburger.Order, error) {
	var dto OrderDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// List retrieves all orders sorted by ID.
func (s *GormOrderStore) List(ctx context.Context) ([]*megaburger.Order, error) {
	var dtos []OrderDTO
	if err := s.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*megaburger.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders, nil
}

// Update saves an existing order.
func (s *GormOrderStore) Update(ctx context.Context, o *megaburger.Order) error {
	dto := fromDomain(o)
	result := s.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "eta_minutes": dto.EtaMinutes})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", o.ID)
	}

	return nil
}
