package adcache

import (
	"go.uber.org/zap"
	"time"
)

// Result of a cache access, reported to the observer
type Result string

const (
	// ResultLocalHit found in the in-process table
	ResultLocalHit Result = "local_hit"

	// ResultHit found in the remote cache
	ResultHit Result = "hit"

	// ResultMiss lease granted, value loaded from store
	ResultMiss Result = "miss"

	// ResultLeaseRejected all waits finished without the value
	ResultLeaseRejected Result = "lease_rejected"

	// ResultCacheError remote cache failed, value loaded from store
	ResultCacheError Result = "cache_error"
)

type storeOptions struct {
	waitLeaseDurations   []time.Duration
	failedOnWaitFinished bool

	ttl             uint32
	localTTLSeconds int

	logger   *zap.Logger
	observer func(Result)
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		waitLeaseDurations: []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			50 * time.Millisecond,
		},
		failedOnWaitFinished: false,

		ttl:             300,
		localTTLSeconds: 5,

		logger:   zap.NewNop(),
		observer: func(Result) {},
	}
}

func newStoreOptions(options ...Option) storeOptions {
	opts := defaultStoreOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *storeOptions)

// WithWaitLeaseDurations ...
func WithWaitLeaseDurations(durations []time.Duration) Option {
	return func(opts *storeOptions) {
		opts.waitLeaseDurations = durations
	}
}

// WithFailedOnWaitFinished fails when all waits finished, otherwise reads from the store directly
func WithFailedOnWaitFinished(b bool) Option {
	return func(opts *storeOptions) {
		opts.failedOnWaitFinished = b
	}
}

// WithTTL of remote entries in seconds, zero means no expiry
func WithTTL(ttl uint32) Option {
	return func(opts *storeOptions) {
		opts.ttl = ttl
	}
}

// WithLocalTTL of in-process entries in seconds, zero disables the local layer on writes
func WithLocalTTL(seconds int) Option {
	return func(opts *storeOptions) {
		opts.localTTLSeconds = seconds
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

// WithObserver is called once per Get with how it was served
func WithObserver(fn func(Result)) Option {
	return func(opts *storeOptions) {
		opts.observer = fn
	}
}
