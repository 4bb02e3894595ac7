package models

import (
	"math"
	"time"

	"github.com/lucsky/cuid"
)

const (
	OrderPending   = "Pending"
	OrderCompleted = "Completed"
)

// Order is a cart of menu items for one customer. The same item may appear
// multiple times to represent quantity. Once completed the order no longer
// mutates.
type Order struct {
	OrderID     string      `json:"order_id"`
	Customer    Customer    `json:"-"`
	Items       []*MenuItem `json:"item_ids"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	PlacedAt    time.Time   `json:"placed_at"`
}

// OrderRecord is the flat persisted form of an order header.
type OrderRecord struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`
}

func NewOrder(customer Customer) *Order {
	return &Order{
		OrderID:  cuid.New(),
		Customer: customer,
		Status:   OrderPending,
		PlacedAt: time.Now(),
	}
}

// AddItem appends the item and raises the total. For a member with
// allergies it returns advisory warnings for every matching allergen; the
// item is added regardless.
func (o *Order) AddItem(item *MenuItem) []string {
	if o.Status == OrderCompleted {
		return nil
	}
	o.Items = append(o.Items, item)
	o.TotalAmount += item.Price

	if member, ok := o.Customer.(*Member); ok {
		return member.WarningsFor(item)
	}
	return nil
}

// RemoveItem removes the first item with a matching id and lowers the
// total. Removing an item that is not in the order is a no-op.
func (o *Order) RemoveItem(item *MenuItem) {
	if o.Status == OrderCompleted {
		return
	}
	for i, it := range o.Items {
		if it.ID == item.ID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.TotalAmount -= it.Price
			return
		}
	}
}

// Complete marks the order completed and applies loyalty side effects for
// member customers: floor(total/10) points and one favorite bump per item
// occurrence. Returns the points earned; zero for guests and for orders
// already completed.
func (o *Order) Complete() int {
	if o.Status == OrderCompleted {
		return 0
	}
	o.Status = OrderCompleted

	member, ok := o.Customer.(*Member)
	if !ok {
		return 0
	}
	earned := int(math.Floor(o.TotalAmount / 10))
	member.AddPoints(earned)
	for _, item := range o.Items {
		member.BumpFavorite(item.ID)
	}
	return earned
}

// CustomerID is the id persisted on the order header.
func (o *Order) CustomerID() string {
	if member, ok := o.Customer.(*Member); ok {
		return member.MemberID
	}
	return "NON-MEMBER"
}

// ItemQuantities folds duplicate items into per-item counts for
// persistence.
func (o *Order) ItemQuantities() map[string]int {
	quantities := make(map[string]int, len(o.Items))
	for _, item := range o.Items {
		quantities[item.ID]++
	}
	return quantities
}

// Record returns the flat header form of the order.
func (o *Order) Record() OrderRecord {
	return OrderRecord{
		OrderID:     o.OrderID,
		CustomerID:  o.CustomerID(),
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		PlacedAt:    o.PlacedAt,
	}
}
