package orders

// OrderIsConfirmed requires the order to be confirmed.
type OrderIsConfirmed struct {
	order *Order
}

// NewOrderIsConfirmed creates a rule requiring order to be confirmed.
func NewOrderIsConfirmed(order *Order) *OrderIsConfirmed {
	return &OrderIsConfirmed{order: order}
}

func (r *OrderIsConfirmed) IsSatisfied() bool {
	return r.order.Status == StatusConfirmed
}

func (r *OrderIsConfirmed) FailureMessage() string {
	return "Order is not confirmed"
}

// OrderIsNotDispatched requires the order not to have left the warehouse.
type OrderIsNotDispatched struct {
	order *Order
}

// NewOrderIsNotDispatched creates a rule requiring order not to be dispatched.
func NewOrderIsNotDispatched(order *Order) *OrderIsNotDispatched {
	return &OrderIsNotDispatched{order: order}
}

func (r *OrderIsNotDispatched) IsSatisfied() bool {
	return r.order.Status != StatusDispatched
}

func (r *OrderIsNotDispatched) FailureMessage() string {
	return "The order is dispatched!"
}

// OrderHasSettledPayment requires a settled payment. A nil payment never satisfies it.
type OrderHasSettledPayment struct {
	payment *Payment
}

// NewOrderHasSettledPayment creates a rule requiring payment to be settled.
func NewOrderHasSettledPayment(payment *Payment) *OrderHasSettledPayment {
	return &OrderHasSettledPayment{payment: payment}
}

func (r *OrderHasSettledPayment) IsSatisfied() bool {
	return r.payment != nil && r.payment.Settled
}

func (r *OrderHasSettledPayment) FailureMessage() string {
	return "Order doesn't have payment"
}
