package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineMonitor_TracksPeak(t *testing.T) {
	gm := NewGoroutineMonitor(time.Hour, 1_000_000)
	base := gm.GetMetrics()
	assert.Equal(t, base.Baseline, base.Current)
	assert.Equal(t, 0, base.Growth)

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
		}()
	}

	gm.Check()
	during := gm.GetMetrics()
	assert.GreaterOrEqual(t, during.Current, base.Baseline+10)
	assert.Equal(t, during.Current, during.Peak)

	close(release)
	wg.Wait()

	gm.Check()
	after := gm.GetMetrics()
	assert.GreaterOrEqual(t, after.Peak, during.Current, "peak never decreases")
}

func TestGoroutineMonitor_StartStop(t *testing.T) {
	gm := NewGoroutineMonitor(5*time.Millisecond, 0)
	gm.Start()
	time.Sleep(20 * time.Millisecond)

	assert.NotPanics(t, func() {
		gm.Stop()
		gm.Stop()
	})
	assert.Greater(t, gm.GetMetrics().Peak, 0)
}
