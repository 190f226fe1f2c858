package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeFetcher struct {
	calls   atomic.Int32
	release chan struct{}
	message string
	err     error
	ctxErr  chan error
}

func (f *fakeFetcher) FetchMessage(ctx context.Context) (string, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			if f.ctxErr != nil {
				f.ctxErr <- ctx.Err()
			}
			return "", ctx.Err()
		}
	}
	return f.message, f.err
}

func waitDone(t *testing.T, v *View) {
	t.Helper()
	select {
	case <-v.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("view did not settle")
	}
}

func TestView_StartsPending(t *testing.T) {
	v := NewView(&fakeFetcher{})
	if PhaseOf(v.State()) != PhasePending {
		t.Errorf("expected pending, got %s", PhaseOf(v.State()))
	}
	if v.Settled() {
		t.Error("new view should not be settled")
	}
}

func TestView_MountResolvesSuccess(t *testing.T) {
	f := &fakeFetcher{message: "Hello from backend"}
	v := NewView(f)

	v.Mount(context.Background())
	waitDone(t, v)

	s, ok := v.State().(Success)
	if !ok {
		t.Fatalf("expected Success, got %T", v.State())
	}
	if s.Message != "Hello from backend" {
		t.Errorf("unexpected message %q", s.Message)
	}
}

func TestView_MountCollapsesFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.New("dial tcp: connection refused")}
	v := NewView(f)

	v.Mount(context.Background())
	waitDone(t, v)

	fail, ok := v.State().(Failure)
	if !ok {
		t.Fatalf("expected Failure, got %T", v.State())
	}
	if fail.Text != ConnectErrorText {
		t.Errorf("expected fixed error text, got %q", fail.Text)
	}
}

func TestView_MountFetchesOnce(t *testing.T) {
	f := &fakeFetcher{message: "hi"}
	v := NewView(f)

	v.Mount(context.Background())
	v.Mount(context.Background())
	waitDone(t, v)
	v.Mount(context.Background())

	if got := f.calls.Load(); got != 1 {
		t.Errorf("expected exactly one fetch, got %d", got)
	}
}

func TestView_UnmountCancelsAndFreezesState(t *testing.T) {
	f := &fakeFetcher{
		message: "late",
		release: make(chan struct{}),
		ctxErr:  make(chan error, 1),
	}
	v := NewView(f)

	v.Mount(context.Background())
	v.Unmount()

	select {
	case err := <-f.ctxErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}

	waitDone(t, v)
	time.Sleep(20 * time.Millisecond)
	if PhaseOf(v.State()) != PhasePending {
		t.Errorf("state changed after unmount: %s", PhaseOf(v.State()))
	}
}

func TestView_LateResultIgnoredAfterUnmount(t *testing.T) {
	f := &fakeFetcher{message: "late", release: make(chan struct{})}
	v := NewView(f)

	v.Mount(context.Background())
	v.Unmount()
	v.resolve(Success{Message: "late"})

	if PhaseOf(v.State()) != PhasePending {
		t.Errorf("expected pending after unmount, got %s", PhaseOf(v.State()))
	}
}

func TestView_ResolvesOnlyOnce(t *testing.T) {
	v := NewView(&fakeFetcher{})
	v.resolve(Success{Message: "first"})
	v.resolve(failed())

	if s, ok := v.State().(Success); !ok || s.Message != "first" {
		t.Errorf("expected first resolution to stick, got %#v", v.State())
	}
}

func TestView_MountAfterUnmountIsNoop(t *testing.T) {
	f := &fakeFetcher{message: "hi"}
	v := NewView(f)

	v.Unmount()
	v.Unmount()
	v.Mount(context.Background())

	if got := f.calls.Load(); got != 0 {
		t.Errorf("expected no fetch after unmount, got %d", got)
	}
}
