package orders

import (
	"context"

	"github.com/michael-freling/business-actions/pkg/action"
)

// CancelOrder cancels an order that has not been dispatched yet.
type CancelOrder struct {
	action.Rules
	order *Order
}

// NewCancelOrder creates the action for order.
func NewCancelOrder(order *Order) (*CancelOrder, error) {
	a := &CancelOrder{order: order}
	if err := action.RegisterBusinessRule(a, NewOrderIsNotDispatched(order)); err != nil {
		return nil, err
	}
	return a, nil
}

// Handle cancels the order and returns it.
func (a *CancelOrder) Handle(ctx context.Context) (*Order, error) {
	a.order.Cancel()
	return a.order, nil
}

// DispatchOrder dispatches a confirmed and paid order.
type DispatchOrder struct {
	action.Rules
	order *Order
}

// NewDispatchOrder creates the action for order.
func NewDispatchOrder(order *Order) (*DispatchOrder, error) {
	a := &DispatchOrder{order: order}
	err := action.RegisterBusinessRules(a,
		NewOrderHasSettledPayment(order.Payment),
		NewOrderIsConfirmed(order),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Handle dispatches the order and returns it.
func (a *DispatchOrder) Handle(ctx context.Context) (*Order, error) {
	a.order.Dispatch()
	return a.order, nil
}
