package store

import (
	"sort"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// cValue is a buffered write: a pending value or a pending deletion.
type cValue struct {
	value   []byte
	deleted bool
}

// cacheKVStore buffers writes over a parent store until Write is
// called. Dropping the store without calling Write discards them,
// which is what gives operations their all-or-nothing semantics.
type cacheKVStore struct {
	parent sdk.KVStore
	cache  map[string]cValue
}

var _ sdk.KVStore = (*cacheKVStore)(nil)

func newCacheKVStore(parent sdk.KVStore) *cacheKVStore {
	return &cacheKVStore{
		parent: parent,
		cache:  make(map[string]cValue),
	}
}

func (s *cacheKVStore) Get(key []byte) []byte {
	if cv, ok := s.cache[string(key)]; ok {
		if cv.deleted {
			return nil
		}
		return cv.value
	}
	return s.parent.Get(key)
}

func (s *cacheKVStore) Has(key []byte) bool {
	if cv, ok := s.cache[string(key)]; ok {
		return !cv.deleted
	}
	return s.parent.Has(key)
}

func (s *cacheKVStore) Set(key, value []byte) {
	if value == nil {
		panic("nil value on cacheKVStore")
	}
	s.cache[string(key)] = cValue{value: value}
}

func (s *cacheKVStore) Delete(key []byte) {
	s.cache[string(key)] = cValue{deleted: true}
}

// Iterator materializes the merged view of parent entries and buffered
// writes in [start, end). The write sets here are small (a handful of
// capability records per operation), so no streaming merge is needed.
func (s *cacheKVStore) Iterator(start, end []byte) sdk.Iterator {
	merged := make(map[string][]byte)

	iter := s.parent.Iterator(start, end)
	for ; iter.Valid(); iter.Next() {
		merged[string(iter.Key())] = iter.Value()
	}
	iter.Close()

	for key, cv := range s.cache {
		if !inDomain([]byte(key), start, end) {
			continue
		}
		if cv.deleted {
			delete(merged, key)
		} else {
			merged[key] = cv.value
		}
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items := make([]kvPair, 0, len(keys))
	for _, key := range keys {
		items = append(items, kvPair{key: []byte(key), value: merged[key]})
	}
	return &memIterator{items: items}
}

// Write flushes the buffered writes to the parent in deterministic key
// order.
func (s *cacheKVStore) Write() {
	keys := make([]string, 0, len(s.cache))
	for key := range s.cache {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cv := s.cache[key]
		if cv.deleted {
			s.parent.Delete([]byte(key))
		} else {
			s.parent.Set([]byte(key), cv.value)
		}
	}

	s.cache = make(map[string]cValue)
}

func inDomain(key, start, end []byte) bool {
	if start != nil && string(key) < string(start) {
		return false
	}
	if end != nil && string(key) >= string(end) {
		return false
	}
	return true
}

type kvPair struct {
	key   []byte
	value []byte
}

type memIterator struct {
	items []kvPair
	index int
}

var _ sdk.Iterator = (*memIterator)(nil)

func (mi *memIterator) Valid() bool {
	return mi.index < len(mi.items)
}

func (mi *memIterator) Next() {
	mi.index++
}

func (mi *memIterator) Key() []byte {
	return mi.items[mi.index].key
}

func (mi *memIterator) Value() []byte {
	return mi.items[mi.index].value
}

func (mi *memIterator) Close() {}
