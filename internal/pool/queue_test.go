package pool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueue_FIFOAndClose(t *testing.T) {
	q := newQueue[int]()
	for i := 0; i < 100; i++ {
		if !q.push(i) {
			t.Fatalf("push %d rejected", i)
		}
	}
	q.close()
	if q.push(100) {
		t.Error("push after close accepted")
	}

	for i := 0; i < 100; i++ {
		v, err := q.pop(context.Background())
		if err != nil {
			t.Fatalf("pop %d: %v", i, err)
		}
		if v != i {
			t.Fatalf("pop = %d, want %d", v, i)
		}
	}
	if _, err := q.pop(context.Background()); !errors.Is(err, ErrDrained) {
		t.Errorf("pop on drained queue = %v, want ErrDrained", err)
	}
}

func TestQueue_PopWakesOnPush(t *testing.T) {
	q := newQueue[string]()
	got := make(chan string)
	go func() {
		v, _ := q.pop(context.Background())
		got <- v
	}()

	time.Sleep(10 * time.Millisecond)
	q.push("job")
	select {
	case v := <-got:
		if v != "job" {
			t.Errorf("got %q", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("pop never woke up")
	}
}

func TestQueue_PushNeverBlocks(t *testing.T) {
	q := newQueue[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100000; i++ {
			q.push(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("push blocked without a consumer")
	}
	if q.len() != 100000 {
		t.Errorf("len = %d", q.len())
	}
}

func TestQueue_CloseWakesEveryPop(t *testing.T) {
	q := newQueue[int]()
	const poppers = 4
	errs := make(chan error, poppers)
	for i := 0; i < poppers; i++ {
		go func() {
			_, err := q.pop(context.Background())
			errs <- err
		}()
	}

	time.Sleep(10 * time.Millisecond)
	q.close()
	q.close()
	for i := 0; i < poppers; i++ {
		select {
		case err := <-errs:
			if !errors.Is(err, ErrDrained) {
				t.Errorf("pop %d = %v, want ErrDrained", i, err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of %d pops woke after close", i, poppers)
		}
	}
}
