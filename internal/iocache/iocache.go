// Package iocache is for caching parsed survey responses.
package iocache

import (
	"sync"

	"github.com/threesixty-dev/threesixty/internal/contract"
)

// CacheStoreManager manages the ResponseStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	responses    contract.ResponseStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetResponseStore returns the response ResponseStore.
func (mgr *CacheStoreManager) GetResponseStore() contract.ResponseStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.responses
}
