package orders

import "github.com/stretchr/testify/mock"

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

// Create is a mock implementation of Store.Create.
func (m *MockStore) Create(order *Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// Load is a mock implementation of Store.Load.
func (m *MockStore) Load(id string) (*Order, error) {
	args := m.Called(id)
	order, _ := args.Get(0).(*Order)
	return order, args.Error(1)
}

// Save is a mock implementation of Store.Save.
func (m *MockStore) Save(order *Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// List is a mock implementation of Store.List.
func (m *MockStore) List() ([]*Order, error) {
	args := m.Called()
	orders, _ := args.Get(0).([]*Order)
	return orders, args.Error(1)
}

// Update is a mock implementation of Store.Update.
// When the expectation returns an order, fn is applied to it.
func (m *MockStore) Update(id string, fn func(*Order) error) (*Order, error) {
	args := m.Called(id, fn)
	order, _ := args.Get(0).(*Order)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if order != nil {
		if err := fn(order); err != nil {
			return nil, err
		}
	}
	return order, nil
}
