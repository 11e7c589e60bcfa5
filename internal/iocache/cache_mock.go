package iocache

import (
	"github.com/stretchr/testify/mock"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetResponseStore implements the CacheManager interface.
func (m *MockCacheManager) GetResponseStore() contract.ResponseStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ResponseStore)
	return store
}

// MockResponseStore is a mock implementation of ResponseStore for testing.
type MockResponseStore struct {
	mock.Mock
}

var _ contract.ResponseStore = &MockResponseStore{} // Compile-time check

// Get implements the ResponseStore interface.
func (m *MockResponseStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the ResponseStore interface.
func (m *MockResponseStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Close implements the ResponseStore interface.
func (m *MockResponseStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the ResponseStore interface.
func (m *MockResponseStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}
