package types

import (
	"github.com/tendermint/tendermint/libs/log"
)

// Context threads the multistore, logger and event manager through one
// operation. It is a value type; With* methods return copies.
type Context struct {
	ms     MultiStore
	logger log.Logger
	em     *EventManager
}

func NewContext(ms MultiStore, logger log.Logger) Context {
	return Context{
		ms:     ms,
		logger: logger,
		em:     NewEventManager(),
	}
}

func (c Context) MultiStore() MultiStore     { return c.ms }
func (c Context) Logger() log.Logger         { return c.logger }
func (c Context) EventManager() *EventManager { return c.em }

// KVStore fetches the KVStore mounted under the given key.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.KVStore(key)
}

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

func (c Context) WithEventManager(em *EventManager) Context {
	c.em = em
	return c
}

// CacheContext returns a context whose store writes are buffered, plus
// a write function that commits them to the parent. Not calling write
// discards every change made through the returned context.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := c.ms.CacheMultiStore()
	cc = c.WithMultiStore(cms)
	return cc, cms.Write
}
