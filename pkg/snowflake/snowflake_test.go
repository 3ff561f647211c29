package snowflake

import (
	"sync"
	"testing"
)

func TestGenOrderSn(t *testing.T) {
	sn := GenOrderSn()
	if sn == "" {
		t.Fatal("expected non-empty order sn")
	}

	t.Logf("generated order sn: %s", sn)
}

func TestGenID(t *testing.T) {
	a, b := GenID(), GenID()
	if a <= 0 || b <= 0 {
		t.Fatalf("expected positive ids, got %d and %d", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %d twice", a)
	}
}

// 唯一性测试：单线程生成
func TestGenOrderSn_Unique(t *testing.T) {
	const n = 10000
	sns := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		sn := GenOrderSn()
		if _, exists := sns[sn]; exists {
			t.Fatalf("duplicate sn found: %s", sn)
		}
		sns[sn] = struct{}{}
	}
}

// 并发测试：多 goroutine 生成
func TestGenOrderSn_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sns = make(map[string]struct{}, total)
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				sn := GenOrderSn()

				mu.Lock()
				if _, exists := sns[sn]; exists {
					t.Errorf("duplicate sn found in concurrent test: %s", sn)
					mu.Unlock()
					return
				}
				sns[sn] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}
