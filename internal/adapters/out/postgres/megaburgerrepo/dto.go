// Package megaburgerrepo provides the postgres-backed OrderStore for the
// MegaBurger backend, mapping backend orders to a relational table.
package megaburgerrepo

import (
	"instafood/internal/core/domain/model/order"
	"instafood/internal/megaburger"
)

// OrderDTO represents the database structure for persisting backend orders.
type OrderDTO struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Meal       string `gorm:"not null"`
	Quantity   int    `gorm:"not null"`
	Status     string `gorm:"index;not null"`
	EtaMinutes *int
}

// TableName specifies the database table name for backend orders.
func (OrderDTO) TableName() string {
	return "megaburger_orders"
}

// fromDomain converts a backend order to its database representation.
func fromDomain(o *megaburger.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID,
		Meal:       o.Meal,
		Quantity:   o.Quantity,
		Status:     string(o.Status),
		EtaMinutes: o.EtaMinutes,
	}
}

// toDomain converts a database row back to a backend order.
func toDomain(dto OrderDTO) *megaburger.Order {
	return &megaburger.Order{
		ID:         dto.ID,
		Meal:       dto.Meal,
		Quantity:   dto.Quantity,
		Status:     order.Status(dto.Status),
		EtaMinutes: dto.EtaMinutes,
	}
}
