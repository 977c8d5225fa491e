package store

import (
	"fmt"

	dbm "github.com/tendermint/tm-db"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// MultiStore hands each mounted store key its own prefixed region of
// one backing database.
type MultiStore struct {
	db     dbm.DB
	stores map[string]sdk.KVStore
}

var _ sdk.MultiStore = (*MultiStore)(nil)

func NewMultiStore(db dbm.DB) *MultiStore {
	return &MultiStore{
		db:     db,
		stores: make(map[string]sdk.KVStore),
	}
}

// MountStore registers a store key. Must be called before the first
// KVStore access for that key.
func (ms *MultiStore) MountStore(key sdk.StoreKey) {
	if _, ok := ms.stores[key.Name()]; ok {
		panic(fmt.Sprintf("store key %s already mounted", key.Name()))
	}
	ms.stores[key.Name()] = prefixStore{
		parent: dbStore{db: ms.db},
		prefix: []byte("s/" + key.Name() + "/"),
	}
}

func (ms *MultiStore) KVStore(key sdk.StoreKey) sdk.KVStore {
	store, ok := ms.stores[key.Name()]
	if !ok {
		panic(fmt.Sprintf("store key %s not mounted", key.Name()))
	}
	return store
}

// CacheMultiStore wraps every mounted store in a write buffer; the
// returned store commits nothing until Write.
func (ms *MultiStore) CacheMultiStore() sdk.CacheMultiStore {
	stores := make(map[string]*cacheKVStore, len(ms.stores))
	for name, store := range ms.stores {
		stores[name] = newCacheKVStore(store)
	}
	return cacheMultiStore{stores: stores}
}

type cacheMultiStore struct {
	stores map[string]*cacheKVStore
}

var _ sdk.CacheMultiStore = cacheMultiStore{}

func (cms cacheMultiStore) KVStore(key sdk.StoreKey) sdk.KVStore {
	store, ok := cms.stores[key.Name()]
	if !ok {
		panic(fmt.Sprintf("store key %s not mounted", key.Name()))
	}
	return store
}

func (cms cacheMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	stores := make(map[string]*cacheKVStore, len(cms.stores))
	for name, store := range cms.stores {
		stores[name] = newCacheKVStore(store)
	}
	return cacheMultiStore{stores: stores}
}

// Write commits the buffered writes of every mounted store.
func (cms cacheMultiStore) Write() {
	for _, store := range cms.stores {
		store.Write()
	}
}
