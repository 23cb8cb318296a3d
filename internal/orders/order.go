package orders

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle status of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusDispatched Status = "dispatched"
	StatusCancelled  Status = "cancelled"
)

// Error variables for common error conditions
var (
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderCorrupted = errors.New("order file corrupted")
	ErrOrderLocked    = errors.New("order is locked by another process")
)

// Payment is the payment attached to an order.
type Payment struct {
	Settled bool `json:"settled"`
}

// Order is a customer order.
type Order struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Payment   *Payment  `json:"payment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewOrder creates an order with the given status and optional payment.
func NewOrder(status Status, payment *Payment) *Order {
	return &Order{
		Status:  status,
		Payment: payment,
	}
}

// Cancel marks the order as cancelled.
func (o *Order) Cancel() {
	o.Status = StatusCancelled
}

// Dispatch marks the order as dispatched.
func (o *Order) Dispatch() {
	o.Status = StatusDispatched
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch status := Status(s); status {
	case StatusPending, StatusConfirmed, StatusDispatched, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}
