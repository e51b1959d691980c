package takeover

import "time"

// Timer is a pending one-shot callback
type Timer interface {
	Stop() bool
}

// Scheduler arms one-shot timers
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type clockScheduler struct {
}

func (clockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Opener opens a click-through url in a new browsing context
type Opener interface {
	Open(url string)
}

// OpenerFunc ...
type OpenerFunc func(url string)

// Open ...
func (f OpenerFunc) Open(url string) {
	f(url)
}

type controllerOptions struct {
	scheduler    Scheduler
	tickInterval time.Duration

	onClosed func()
	onChange func(State)
	opener   Opener
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		scheduler:    clockScheduler{},
		tickInterval: time.Second,
	}
}

func newControllerOptions(options ...Option) controllerOptions {
	opts := defaultControllerOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *controllerOptions)

// WithScheduler replaces the wall clock scheduler
func WithScheduler(s Scheduler) Option {
	return func(opts *controllerOptions) {
		opts.scheduler = s
	}
}

// WithClosedCallback is called after the user dismisses the overlay or the active ad disappears
func WithClosedCallback(fn func()) Option {
	return func(opts *controllerOptions) {
		opts.onClosed = fn
	}
}

// WithStateObserver receives every state, in transition order
func WithStateObserver(fn func(State)) Option {
	return func(opts *controllerOptions) {
		opts.onChange = fn
	}
}

// WithOpener ...
func WithOpener(o Opener) Option {
	return func(opts *controllerOptions) {
		opts.opener = o
	}
}
