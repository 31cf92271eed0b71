// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing on
// delivery date and status, the axes capacity tallies run on.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryDate  time.Time `gorm:"type:date;index"`
	DeliveryTime  string
	Status        int    `gorm:"index"`
	Source        string
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ForceAccepted bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the order_items table.
// Items are owned child rows: updates replace the whole set.
type ItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line items become child rows carrying the parent order's ID.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		CustomerEmail: aggregate.CustomerEmail(),
		Items:         items,
		DeliveryDate:  aggregate.DeliveryDate().Time(),
		DeliveryTime:  aggregate.DeliveryTime(),
		Status:        int(aggregate.Status()),
		Source:        aggregate.Source().String(),
		TotalPrice:    aggregate.TotalPrice(),
		ForceAccepted: aggregate.ForceAccepted(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and the
// force-accepted flag using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	source, err := order.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		items,
		kernel.DateFromTime(dto.DeliveryDate),
		dto.DeliveryTime,
		order.Status(dto.Status),
		source,
		dto.ForceAccepted,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
