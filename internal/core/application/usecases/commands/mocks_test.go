package commands_test

import (
	"context"

	"bakehouse/internal/core/application/usecases/commands"
	"bakehouse/internal/core/domain/model/capacity"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByDateRange(ctx context.Context, from, to kernel.Date) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) SumActiveUnits(
	ctx context.Context,
	date kernel.Date,
	excludeID *kernel.UUID,
) (int, error) {
	args := m.Called(ctx, date, excludeID)
	return args.Int(0), args.Error(1)
}

type MockCapacityRepository struct{ mock.Mock }

func (m *MockCapacityRepository) Get(ctx context.Context, date kernel.Date) (*capacity.DayCapacity, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*capacity.DayCapacity), args.Error(1)
}

func (m *MockCapacityRepository) GetRange(
	ctx context.Context,
	from, to kernel.Date,
) ([]*capacity.DayCapacity, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*capacity.DayCapacity), args.Error(1)
}

func (m *MockCapacityRepository) Upsert(ctx context.Context, record *capacity.DayCapacity) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCapacityRepository) LockDate(ctx context.Context, date kernel.Date) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

type MockAdmissionUoW struct{ mock.Mock }

func (m *MockAdmissionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAdmissionUoW) CapacityRepository() ports.CapacityRepository {
	args := m.Called()
	return args.Get(0).(ports.CapacityRepository)
}

type MockAdmissionUoWFactory struct{ mock.Mock }

func (m *MockAdmissionUoWFactory) Create() commands.AdmissionUoW {
	args := m.Called()
	return args.Get(0).(commands.AdmissionUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCapacityUoW struct{ mock.Mock }

func (m *MockCapacityUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCapacityUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCapacityUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCapacityUoW) CapacityRepository() ports.CapacityRepository {
	args := m.Called()
	return args.Get(0).(ports.CapacityRepository)
}

type MockCapacityUoWFactory struct{ mock.Mock }

func (m *MockCapacityUoWFactory) Create() commands.CapacityUoW {
	args := m.Called()
	return args.Get(0).(commands.CapacityUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.DomainEvent) {
	m.Called(ctx, event)
}
