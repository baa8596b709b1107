package starstore

import (
	"sync"

	"github.com/huangsam/stargaze/internal/contract"
)

// StoreManagerImpl manages the series and ranking store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	series       contract.SeriesStore
	ranking      contract.RankingStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetSeriesStore returns the series SeriesStore.
func (mgr *StoreManagerImpl) GetSeriesStore() contract.SeriesStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.series
}

// GetRankingStore returns the ranking RankingStore.
func (mgr *StoreManagerImpl) GetRankingStore() contract.RankingStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.ranking
}
