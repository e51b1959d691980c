package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is an in-process byte cache with eviction and per entry expiry
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size in bytes
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores value for expireSeconds, zero means until evicted
func (m *MemTable) Set(key string, value []byte, expireSeconds int) {
	_ = m.cache.Set([]byte(key), value, expireSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}

// EntryCount ...
func (m *MemTable) EntryCount() int64 {
	return m.cache.EntryCount()
}
