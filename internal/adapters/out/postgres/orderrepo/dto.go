// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item list is stored as a single JSON text column; the store assigns the
// integer identifier on insert.
type OrderDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	TableID      int   `gorm:"index"`
	OrderDate    time.Time
	Items        string `gorm:"type:text"`
	Status       string
	SpecialNotes string
	Archived     bool `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := order.EncodeItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		TableID:      aggregate.TableID().Int(),
		OrderDate:    aggregate.OrderDate(),
		Items:        items,
		Status:       aggregate.Status().String(),
		SpecialNotes: aggregate.SpecialNotes(),
		Archived:     aggregate.Archived(),
	}, nil
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.NewTableID(dto.TableID)
	if err != nil {
		return nil, err
	}

	items, err := order.ParseItems(dto.Items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		tableID,
		dto.OrderDate,
		items,
		order.RestoreStatus(dto.Status),
		dto.SpecialNotes,
		dto.Archived,
	)
}
