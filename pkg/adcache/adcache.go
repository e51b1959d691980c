package adcache

import (
	"context"
	"errors"
	"go.uber.org/zap"
	"time"
)

//go:generate moq -out adcache_mocks_test.go . MemTable CacheClient CachePipeline

// MemTable for the in-process layer in front of the remote cache
type MemTable interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, expireSeconds int)
	Delete(key string)
}

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() CachePipeline
}

// CachePipeline for batching cache requests
type CachePipeline interface {
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Loader reads the value from the backing store
type Loader func(ctx context.Context) ([]byte, error)

// ErrLeaseNotGranted when another client holds the lease for longer than all wait durations
var ErrLeaseNotGranted = errors.New("adcache: lease not granted")

// Store is a lease based cache-aside store, can be shared between goroutines
type Store interface {
	Get(ctx context.Context, key string, load Loader) ([]byte, error)
	Invalidate(ctx context.Context, key string) error
}

type sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realSleeper struct {
}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type storeImpl struct {
	mem     MemTable
	client  CacheClient
	sleeper sleeper
	opts    storeOptions
}

// NewStore ...
func NewStore(mem MemTable, client CacheClient, options ...Option) Store {
	return newStoreImpl(mem, client, options...)
}

func newStoreImpl(mem MemTable, client CacheClient, options ...Option) *storeImpl {
	return &storeImpl{
		mem:     mem,
		client:  client,
		sleeper: realSleeper{},
		opts:    newStoreOptions(options...),
	}
}

// Get returns the cached value of key, loading it with load on a granted lease
func (s *storeImpl) Get(ctx context.Context, key string, load Loader) ([]byte, error) {
	if s.mem != nil {
		data, ok := s.mem.Get(key)
		if ok {
			s.opts.observer(ResultLocalHit)
			return data, nil
		}
	}

	pipe := s.client.Pipeline()
	defer pipe.Finish()

	waits := s.opts.waitLeaseDurations
	for {
		output, err := pipe.LeaseGet(key)()
		if err != nil {
			s.opts.logger.Warn("Cache lease get failed, reading from store",
				zap.String("key", key), zap.Error(err))
			s.opts.observer(ResultCacheError)
			return load(ctx)
		}

		switch output.Type {
		case LeaseGetTypeOK:
			s.opts.observer(ResultHit)
			s.setLocal(key, output.Data)
			return output.Data, nil

		case LeaseGetTypeGranted:
			s.opts.observer(ResultMiss)
			return s.loadAndSet(ctx, pipe, key, output.LeaseID, load)

		default:
			if len(waits) == 0 {
				s.opts.observer(ResultLeaseRejected)
				if s.opts.failedOnWaitFinished {
					return nil, ErrLeaseNotGranted
				}
				return load(ctx)
			}
			d := waits[0]
			waits = waits[1:]

			err := s.sleeper.Sleep(ctx, d)
			if err != nil {
				return nil, err
			}
		}
	}
}

func (s *storeImpl) loadAndSet(
	ctx context.Context, pipe CachePipeline, key string, leaseID uint64, load Loader,
) ([]byte, error) {
	data, err := load(ctx)
	if err != nil {
		// release the lease so other clients do not wait on it
		if delErr := pipe.Delete(key)(); delErr != nil {
			s.opts.logger.Warn("Cache delete failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	err = pipe.LeaseSet(key, data, leaseID, s.opts.ttl)()
	if err != nil {
		s.opts.logger.Warn("Cache lease set failed", zap.String("key", key), zap.Error(err))
	}
	s.setLocal(key, data)
	return data, nil
}

func (s *storeImpl) setLocal(key string, data []byte) {
	if s.mem == nil || s.opts.localTTLSeconds <= 0 {
		return
	}
	s.mem.Set(key, data, s.opts.localTTLSeconds)
}

// Invalidate deletes key from the remote cache and the local table of this process
func (s *storeImpl) Invalidate(_ context.Context, key string) error {
	if s.mem != nil {
		s.mem.Delete(key)
	}

	pipe := s.client.Pipeline()
	defer pipe.Finish()
	return pipe.Delete(key)()
}
