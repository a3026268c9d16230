package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.DriverDocument) (*model.DriverDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, driverID, id string) (*model.DriverDocument, error) {
	args := m.Called(ctx, driverID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverDocument), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, driverID string, q repository.ListQuery) (*repository.PageResult[model.DriverDocument], error) {
	args := m.Called(ctx, driverID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.DriverDocument]), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, driverID, id string) error {
	args := m.Called(ctx, driverID, id)
	return args.Error(0)
}
