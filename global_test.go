package routine

import (
	"fmt"
	"strings"
	"testing"
)

func TestHandlePublishTwice(t *testing.T) {
	var h handle
	h.publish(New(2))

	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("second publication did not panic")
		}
		if got := fmt.Sprint(p); !strings.Contains(got, "already published") {
			t.Errorf("wrong panic: %s", got)
		}
	}()

	h.publish(New(2))
}

func TestHandlePublishNil(t *testing.T) {
	var h handle
	defer func() {
		if recover() == nil {
			t.Error("publishing a nil runtime did not panic")
		}
	}()
	h.publish(nil)
}

func TestHandleLoadUnpublished(t *testing.T) {
	var h handle
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("loading an unpublished runtime did not panic")
		}
		if got := fmt.Sprint(p); !strings.Contains(got, "not published") {
			t.Errorf("wrong panic: %s", got)
		}
	}()
	h.load()
}

// TestGlobal is the one test that touches the real process-wide handle,
// since publication is irreversible.
func TestGlobal(t *testing.T) {
	r := New(3)
	Init(r)

	var trace []string
	Go(func() {
		trace = append(trace, "a0")
		Yield()
		trace = append(trace, "a1")
	})
	Go(func() {
		trace = append(trace, "b0")
	})
	r.Run()

	want := "a0 b0 a1"
	if got := strings.Join(trace, " "); got != want {
		t.Errorf("wrong schedule through the published runtime: want=%q got=%q", want, got)
	}
}
