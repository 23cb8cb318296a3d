package orders

import (
	"context"
	"testing"

	"github.com/michael-freling/business-actions/pkg/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrder_Perform(t *testing.T) {
	tests := []struct {
		name        string
		order       *Order
		wantStatus  Status
		wantFailing []string
	}{
		{
			name:       "cancels pending order",
			order:      NewOrder(StatusPending, nil),
			wantStatus: StatusCancelled,
		},
		{
			name:       "cancels confirmed order",
			order:      NewOrder(StatusConfirmed, &Payment{Settled: true}),
			wantStatus: StatusCancelled,
		},
		{
			name:        "refuses dispatched order",
			order:       NewOrder(StatusDispatched, &Payment{Settled: true}),
			wantStatus:  StatusDispatched,
			wantFailing: []string{"The order is dispatched!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cancel, err := NewCancelOrder(tt.order)
			require.NoError(t, err)

			got, err := action.Perform(context.Background(), cancel)

			if len(tt.wantFailing) > 0 {
				var notSatisfied *action.RulesNotSatisfiedError
				require.ErrorAs(t, err, &notSatisfied)
				require.Len(t, notSatisfied.FailingRules, 1)
				assert.IsType(t, &OrderIsNotDispatched{}, notSatisfied.FailingRules[0])
				assert.Equal(t, tt.wantFailing, notSatisfied.FailingRulesMessages())
				assert.Nil(t, got)
				assert.Equal(t, tt.wantStatus, tt.order.Status, "order must be unchanged")
				return
			}

			require.NoError(t, err)
			assert.Same(t, tt.order, got)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestDispatchOrder_Perform(t *testing.T) {
	tests := []struct {
		name        string
		order       *Order
		wantStatus  Status
		wantFailing []string
	}{
		{
			name:       "dispatches confirmed order with settled payment",
			order:      NewOrder(StatusConfirmed, &Payment{Settled: true}),
			wantStatus: StatusDispatched,
		},
		{
			name:        "refuses paid order that is not confirmed",
			order:       NewOrder(StatusPending, &Payment{Settled: true}),
			wantStatus:  StatusPending,
			wantFailing: []string{"Order is not confirmed"},
		},
		{
			name:        "refuses confirmed order with unsettled payment",
			order:       NewOrder(StatusConfirmed, &Payment{Settled: false}),
			wantStatus:  StatusConfirmed,
			wantFailing: []string{"Order doesn't have payment"},
		},
		{
			name:        "refuses pending order without payment",
			order:       NewOrder(StatusPending, nil),
			wantStatus:  StatusPending,
			wantFailing: []string{"Order doesn't have payment", "Order is not confirmed"},
		},
		{
			name:        "refuses order with unknown status",
			order:       NewOrder(Status("invalid_status"), nil),
			wantStatus:  Status("invalid_status"),
			wantFailing: []string{"Order doesn't have payment", "Order is not confirmed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatch, err := NewDispatchOrder(tt.order)
			require.NoError(t, err)

			got, err := action.Perform(context.Background(), dispatch)

			if len(tt.wantFailing) > 0 {
				var notSatisfied *action.RulesNotSatisfiedError
				require.ErrorAs(t, err, &notSatisfied)
				assert.Len(t, notSatisfied.FailingRules, len(tt.wantFailing))
				assert.Equal(t, tt.wantFailing, notSatisfied.FailingRulesMessages())
				assert.Equal(t, notSatisfied.FailingRules, dispatch.FailingRules())
				assert.Nil(t, got)
				assert.Equal(t, tt.wantStatus, tt.order.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Empty(t, dispatch.FailingRules())
		})
	}
}

func TestDispatchOrder_FailingRuleOrder(t *testing.T) {
	order := NewOrder(StatusPending, nil)

	_, err := action.Do(NewDispatchOrder(order))

	var notSatisfied *action.RulesNotSatisfiedError
	require.ErrorAs(t, err, &notSatisfied)
	require.Len(t, notSatisfied.FailingRules, 2)
	assert.IsType(t, &OrderHasSettledPayment{}, notSatisfied.FailingRules[0])
	assert.IsType(t, &OrderIsConfirmed{}, notSatisfied.FailingRules[1])
	assert.Equal(t,
		"business rules (orders.OrderHasSettledPayment, orders.OrderIsConfirmed) are not satisfied",
		err.Error(),
	)
}

func TestNewDispatchOrder_RegistersRules(t *testing.T) {
	order := NewOrder(StatusConfirmed, &Payment{Settled: true})

	dispatch, err := NewDispatchOrder(order)

	require.NoError(t, err)
	rules := dispatch.BusinessRules()
	require.Len(t, rules, 2)
	assert.Equal(t, "orders.OrderHasSettledPayment", action.RuleName(rules[0]))
	assert.Equal(t, "orders.OrderIsConfirmed", action.RuleName(rules[1]))
}

func TestCancelOrder_RejectsSecondNotDispatchedRule(t *testing.T) {
	order := NewOrder(StatusPending, nil)
	cancel, err := NewCancelOrder(order)
	require.NoError(t, err)

	err = action.RegisterBusinessRule(cancel, NewOrderIsNotDispatched(order))

	var dupErr *action.DuplicateRuleError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "orders.CancelOrder", dupErr.Action)
	assert.Equal(t, "orders.OrderIsNotDispatched", dupErr.Rule)
	assert.Len(t, cancel.BusinessRules(), 1)
}

func TestDo_DispatchOrder(t *testing.T) {
	order := NewOrder(StatusConfirmed, &Payment{Settled: true})

	got, err := action.Do(NewDispatchOrder(order))

	require.NoError(t, err)
	assert.Equal(t, StatusDispatched, got.Status)
}
