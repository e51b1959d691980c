package takeover

import (
	"fmt"
	"github.com/QuangTung97/booth-ads/model"
	"sync"
)

// CountdownSeconds is the minimum view duration before the overlay can be dismissed
const CountdownSeconds = 5

// Phase ...
type Phase int

const (
	// PhaseHidden ...
	PhaseHidden Phase = 1

	// PhaseShowing counting down, dismiss is ignored
	PhaseShowing Phase = 2

	// PhaseDismissible ...
	PhaseDismissible Phase = 3
)

// State ...
type State struct {
	Phase     Phase
	Remaining int
	AdID      string
}

func (s State) String() string {
	switch s.Phase {
	case PhaseShowing:
		return fmt.Sprintf("Showing(%d)", s.Remaining)
	case PhaseDismissible:
		return "Dismissible"
	default:
		return "Hidden"
	}
}

func hiddenState() State {
	return State{Phase: PhaseHidden}
}

func showingState(adID string, remaining int) State {
	return State{
		Phase:     PhaseShowing,
		Remaining: remaining,
		AdID:      adID,
	}
}

// Controller drives the fullscreen takeover overlay.
// Callbacks run outside the lock, in transition order.
type Controller struct {
	opts controllerOptions

	mu sync.Mutex

	state State
	ad    *model.Advertisement
	timer Timer
	gen   uint64

	dismissed map[string]struct{}
	closed    bool

	calls   []func()
	calling bool
}

// New ...
func New(options ...Option) *Controller {
	return &Controller{
		opts:      newControllerOptions(options...),
		state:     hiddenState(),
		dismissed: map[string]struct{}{},
	}
}

// State ...
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Ad returns the advertisement on screen, nil when hidden
func (c *Controller) Ad() *model.Advertisement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ad
}

// Show feeds the currently active fullscreen ad, nil if there is none
func (c *Controller) Show(ad *model.Advertisement) {
	c.mu.Lock()
	c.show(ad)
	c.unlockAndCall()
}

func (c *Controller) show(ad *model.Advertisement) {
	if c.closed {
		return
	}

	visible := c.state.Phase != PhaseHidden

	if ad == nil {
		if visible {
			c.hide(true)
		}
		return
	}

	if visible && c.state.AdID == ad.ID {
		c.ad = ad
		return
	}

	if _, ok := c.dismissed[ad.ID]; ok {
		if visible {
			c.hide(true)
		}
		return
	}

	c.start(ad)
}

// Dismiss hides a dismissible overlay. Returns false and does nothing in any other state.
func (c *Controller) Dismiss() bool {
	c.mu.Lock()
	if c.closed || c.state.Phase != PhaseDismissible {
		c.mu.Unlock()
		return false
	}

	c.dismissed[c.state.AdID] = struct{}{}
	c.hide(true)
	c.unlockAndCall()
	return true
}

// Click opens the click-through url of the visible ad, if it has one
func (c *Controller) Click() (string, bool) {
	c.mu.Lock()
	if c.closed || c.ad == nil {
		c.mu.Unlock()
		return "", false
	}

	url, ok := c.ad.ClickURL()
	if ok && c.opts.opener != nil {
		opener := c.opts.opener
		c.addCall(func() {
			opener.Open(url)
		})
	}
	c.unlockAndCall()
	return url, ok
}

// Close tears the controller down. The closed callback is not invoked.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.state.Phase != PhaseHidden {
		c.hide(false)
	}
	c.closed = true
	c.unlockAndCall()
}

func (c *Controller) start(ad *model.Advertisement) {
	c.cancelTimer()
	c.gen++
	c.ad = ad
	c.setState(showingState(ad.ID, CountdownSeconds))
	c.arm()
}

func (c *Controller) hide(notify bool) {
	c.cancelTimer()
	c.gen++
	c.ad = nil
	c.setState(hiddenState())

	if notify && c.opts.onClosed != nil {
		c.addCall(c.opts.onClosed)
	}
}

func (c *Controller) arm() {
	gen := c.gen
	c.timer = c.opts.scheduler.AfterFunc(c.opts.tickInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) cancelTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state.Phase != PhaseShowing {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	remaining := c.state.Remaining - 1
	c.setState(showingState(c.state.AdID, remaining))
	if remaining <= 0 {
		c.setState(State{
			Phase: PhaseDismissible,
			AdID:  c.state.AdID,
		})
	} else {
		c.arm()
	}
	c.unlockAndCall()
}

func (c *Controller) setState(s State) {
	c.state = s
	if c.opts.onChange != nil {
		fn := c.opts.onChange
		c.addCall(func() {
			fn(s)
		})
	}
}

func (c *Controller) addCall(fn func()) {
	c.calls = append(c.calls, fn)
}

func (c *Controller) unlockAndCall() {
	if c.calling {
		c.mu.Unlock()
		return
	}

	c.calling = true
	for len(c.calls) > 0 {
		calls := c.calls
		c.calls = nil

		c.mu.Unlock()
		for _, fn := range calls {
			fn()
		}
		c.mu.Lock()
	}
	c.calling = false
	c.mu.Unlock()
}
