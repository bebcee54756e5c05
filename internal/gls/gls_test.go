package gls

import (
	"sync"
	"testing"
)

func TestStoreLoadClear(t *testing.T) {
	type occupant struct{ name string }

	v := &occupant{name: "slot-1"}
	Current().Store(v)

	if got := Current().Load(); got != any(v) {
		t.Errorf("wrong value after Store: want=%v got=%v", v, got)
	}

	Current().Clear()

	if got := Current().Load(); got != nil {
		t.Errorf("value survived Clear: got=%v", got)
	}
}

func TestPerGoroutineIsolation(t *testing.T) {
	const n = 8

	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Current().Store(i)
			if got := Current().Load(); got != any(i) {
				t.Errorf("goroutine %d read foreign value: got=%v", i, got)
			}
			Current().Clear()
		}(i)
	}

	wg.Wait()

	if got := Current().Load(); got != nil {
		t.Errorf("test goroutine has a value it never stored: got=%v", got)
	}
}

func BenchmarkGLS(b *testing.B) {
	b.Run("getg", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = getg()
		}
	})

	b.Run("load", func(b *testing.B) {
		g := Current()
		g.Store(42)
		for i := 0; i < b.N; i++ {
			_ = g.Load()
		}
		g.Clear()
	})

	b.Run("store clear", func(b *testing.B) {
		g := Current()
		for i := 0; i < b.N; i++ {
			g.Store(42)
			g.Clear()
		}
	})
}
