package store

import (
	dbm "github.com/tendermint/tm-db"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// dbStore adapts a tm-db database to the KVStore interface.
type dbStore struct {
	db dbm.DB
}

var _ sdk.KVStore = dbStore{}

func (s dbStore) Get(key []byte) []byte {
	return s.db.Get(key)
}

func (s dbStore) Has(key []byte) bool {
	return s.db.Has(key)
}

func (s dbStore) Set(key, value []byte) {
	s.db.Set(key, value)
}

func (s dbStore) Delete(key []byte) {
	s.db.Delete(key)
}

func (s dbStore) Iterator(start, end []byte) sdk.Iterator {
	return s.db.Iterator(start, end)
}
