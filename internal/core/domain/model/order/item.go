package order

import (
	"errors"
	"fmt"

	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a product, how many units of it, and
// the unit price frozen at the time of ordering. Each unit counts toward
// the daily production capacity of the order's delivery date.
//
// Item is an immutable value object; the zero value is invalid.
type Item struct { //nolint:recvcheck //using for validation
	productName string
	quantity    int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// Product name must be non-empty, quantity must be positive, and the unit
// price must be non-negative (free items are legal, negative prices are not).
func NewItem(productName string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the name of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity x unit price for this line.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
