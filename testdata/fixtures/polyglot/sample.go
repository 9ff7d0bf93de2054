package sample

import "fmt"

// Order is a customer order.
type Order struct {
	ID    string
	Total int
}

func (o Order) Describe() string {
	return fmt.Sprintf("%s: %d", o.ID, o.Total)
}

func newOrder(id string) *Order {
	return &Order{ID: id}
}
