package tui

import (
	"testing"
	"time"
)

func TestRedrawerCoalescesRequests(t *testing.T) {
	r := NewRedrawer()
	done := make(chan struct{})

	finished := make(chan struct{})
	go func() {
		for n := 0; n < 10; n++ {
			r.Request()
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Request() must never block")
	}

	if _, ok := r.Wait(done)().(RedrawMsg); !ok {
		t.Fatal("Wait() should deliver the pending redraw")
	}

	close(done)
	if _, ok := r.Wait(done)().(SessionEndedMsg); !ok {
		t.Error("Wait() should report the session end once nothing is pending")
	}
}
