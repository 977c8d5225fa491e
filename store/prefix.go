package store

import (
	sdk "github.com/mintgate-chain/mintgate/types"
)

// prefixStore gives each mounted store key its own region of the
// backing database.
type prefixStore struct {
	parent sdk.KVStore
	prefix []byte
}

var _ sdk.KVStore = prefixStore{}

func (s prefixStore) key(key []byte) []byte {
	if key == nil {
		panic("nil key on prefixStore")
	}
	return append(append([]byte{}, s.prefix...), key...)
}

func (s prefixStore) Get(key []byte) []byte {
	return s.parent.Get(s.key(key))
}

func (s prefixStore) Has(key []byte) bool {
	return s.parent.Has(s.key(key))
}

func (s prefixStore) Set(key, value []byte) {
	s.parent.Set(s.key(key), value)
}

func (s prefixStore) Delete(key []byte) {
	s.parent.Delete(s.key(key))
}

func (s prefixStore) Iterator(start, end []byte) sdk.Iterator {
	var newStart []byte
	if start == nil {
		newStart = append([]byte{}, s.prefix...)
	} else {
		newStart = s.key(start)
	}

	var newEnd []byte
	if end == nil {
		newEnd = sdk.PrefixEndBytes(s.prefix)
	} else {
		newEnd = s.key(end)
	}

	return &prefixIterator{
		prefix: s.prefix,
		iter:   s.parent.Iterator(newStart, newEnd),
	}
}

// prefixIterator strips the region prefix from yielded keys.
type prefixIterator struct {
	prefix []byte
	iter   sdk.Iterator
}

var _ sdk.Iterator = (*prefixIterator)(nil)

func (pi *prefixIterator) Valid() bool { return pi.iter.Valid() }
func (pi *prefixIterator) Next()       { pi.iter.Next() }
func (pi *prefixIterator) Close()      { pi.iter.Close() }

func (pi *prefixIterator) Key() []byte {
	key := pi.iter.Key()
	return key[len(pi.prefix):]
}

func (pi *prefixIterator) Value() []byte {
	return pi.iter.Value()
}
