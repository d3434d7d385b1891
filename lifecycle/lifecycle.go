package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle lets the owner of background goroutines ask them to stop and
// wait until they have.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Go(run func()) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		run()
	}()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
