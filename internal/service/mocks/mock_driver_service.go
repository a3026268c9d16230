package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
	"github.com/freightdev/openhwy-sub001/internal/service"
)

type MockDriverService struct {
	mock.Mock
}

func (m *MockDriverService) List(ctx context.Context, tenant auth.Tenant, q repository.ListQuery) (*service.DriverListResult, error) {
	args := m.Called(ctx, tenant, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DriverListResult), args.Error(1)
}

func (m *MockDriverService) Get(ctx context.Context, tenant auth.Tenant, id string) (*model.Driver, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverService) Create(ctx context.Context, tenant auth.Tenant, in service.CreateDriverInput) (*model.Driver, error) {
	args := m.Called(ctx, tenant, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverService) Update(ctx context.Context, tenant auth.Tenant, id string, u model.DriverUpdate) (*model.Driver, error) {
	args := m.Called(ctx, tenant, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverService) Delete(ctx context.Context, tenant auth.Tenant, id string) error {
	args := m.Called(ctx, tenant, id)
	return args.Error(0)
}
