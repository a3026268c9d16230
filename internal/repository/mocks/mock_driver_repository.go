package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, d *model.Driver) (*model.Driver, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByID(ctx context.Context, companyID, id string) (*model.Driver, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context, companyID string, q repository.ListQuery) (*repository.PageResult[model.Driver], error) {
	args := m.Called(ctx, companyID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Driver]), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, companyID, id string, u model.DriverUpdate) (*model.Driver, error) {
	args := m.Called(ctx, companyID, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, companyID, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
