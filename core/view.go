package core

import (
	"context"
	"log"
	"sync"
)

// View is the controller behind one displayed page. It fetches the greeting
// once, on mount, and holds the state the page renders from.
type View struct {
	fetcher Fetcher
	Debug   bool

	mu        sync.Mutex
	state     State
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

func NewView(f Fetcher) *View {
	return &View{
		fetcher: f,
		state:   Pending{},
		done:    make(chan struct{}),
	}
}

// Mount starts the single fetch. Calls after the first, or after Unmount,
// do nothing. The fetch is cancelled when ctx ends or the view is unmounted.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted || v.unmounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	go func() {
		defer cancel()
		message, err := v.fetcher.FetchMessage(fetchCtx)
		if err != nil {
			if v.Debug {
				log.Printf("[view] fetch failed: %v", err)
			}
			v.resolve(failed())
			return
		}
		v.resolve(Success{Message: message})
	}()
}

func (v *View) resolve(s State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted || PhaseOf(v.state) != PhasePending {
		return
	}
	v.state = s
	v.closeDone()
}

// Unmount cancels an outstanding fetch. Whatever it returns afterwards is
// dropped, so the state is frozen from here on.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted {
		return
	}
	v.unmounted = true
	if v.cancel != nil {
		v.cancel()
	}
	v.closeDone()
}

func (v *View) closeDone() {
	v.closeOnce.Do(func() { close(v.done) })
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Done is closed once the view has settled or been unmounted.
func (v *View) Done() <-chan struct{} {
	return v.done
}

func (v *View) Settled() bool {
	return PhaseOf(v.State()) != PhasePending
}
