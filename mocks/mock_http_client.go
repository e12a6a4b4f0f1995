// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockHTTPClient is a mock implementation of domain.HTTPClient
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Head(ctx context.Context, url string) (map[string]string, error) {
	args := m.Called(ctx, url)

	var headers map[string]string
	if args.Get(0) != nil {
		headers = args.Get(0).(map[string]string)
	}

	return headers, args.Error(1)
}

func (m *MockHTTPClient) Get(ctx context.Context, url string) (io.ReadCloser, map[string]string, error) {
	args := m.Called(ctx, url)

	var reader io.ReadCloser
	if args.Get(0) != nil {
		reader = args.Get(0).(io.ReadCloser)
	}

	var headers map[string]string
	if args.Get(1) != nil {
		headers = args.Get(1).(map[string]string)
	}

	return reader, headers, args.Error(2)
}
