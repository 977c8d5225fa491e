package types

// StoreKey is the unexposed handle modules use to reach their own
// region of the multistore.
type StoreKey interface {
	Name() string
	String() string
}

// KVStoreKey is the canonical StoreKey implementation.
type KVStoreKey struct {
	name string
}

func NewKVStoreKey(name string) *KVStoreKey {
	return &KVStoreKey{name: name}
}

func (key *KVStoreKey) Name() string {
	return key.name
}

func (key *KVStoreKey) String() string {
	return "KVStoreKey(" + key.name + ")"
}

// KVStore is the per-module keyed byte store. Set and Delete must only
// be called during an operation whose surrounding multistore is
// cache-wrapped; the dispatcher commits or discards the whole write
// set.
type KVStore interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Set(key, value []byte)
	Delete(key []byte)

	// Iterator yields entries in [start, end) in ascending key order.
	Iterator(start, end []byte) Iterator
}

// Iterator matches the subset of the tm-db iterator the modules use.
type Iterator interface {
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// MultiStore maps store keys to independent KVStores.
type MultiStore interface {
	KVStore(key StoreKey) KVStore

	// CacheMultiStore wraps every mounted store in a write buffer.
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore is a MultiStore whose writes are buffered until
// Write; dropping it without calling Write discards them.
type CacheMultiStore interface {
	MultiStore
	Write()
}

// KVStorePrefixIterator iterates over all keys with the given prefix.
func KVStorePrefixIterator(store KVStore, prefix []byte) Iterator {
	return store.Iterator(prefix, PrefixEndBytes(prefix))
}

// PrefixEndBytes returns the []byte that would end a range query for
// all []byte with a certain prefix.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)

	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		}
		end = end[:len(end)-1]
		if len(end) == 0 {
			end = nil
			break
		}
	}
	return end
}
