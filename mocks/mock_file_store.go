package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"urlget/internal/domain"
)

// MockFileStore is a mock implementation of domain.FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Stat(ctx context.Context, dest string) (domain.FileInfo, error) {
	args := m.Called(ctx, dest)

	var info domain.FileInfo
	if args.Get(0) != nil {
		info = args.Get(0).(domain.FileInfo)
	}

	return info, args.Error(1)
}

func (m *MockFileStore) Put(ctx context.Context, dest string, reader io.Reader) (int64, error) {
	args := m.Called(ctx, dest, reader)
	return args.Get(0).(int64), args.Error(1)
}
