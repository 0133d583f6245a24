package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/expense-server/internal/operator/actions"
)

var (
	ErrActionInProgress = errors.New("operator: an action with the same key is already in progress")
	ErrStopped          = errors.New("operator: stopped")
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	deps       *actions.Dependencies
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	stateMu sync.RWMutex
	stopped bool

	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

func NewOperatorDelegator(deps *actions.Dependencies, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		deps:       deps,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
		inFlight:   make(map[string]struct{}),
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.deps, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMu.Unlock()
		d.wg.Wait()
	})
}

// Process runs action on a worker and waits for it. While an action with the
// same key is queued or running, ErrActionInProgress is returned instead.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	release, ok := d.acquire(action.Key())
	if !ok {
		return ErrActionInProgress
	}

	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		release:  release,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		release()
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stateMu.RLock()
	defer d.stateMu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) acquire(key string) (func(), bool) {
	d.inFlightMu.Lock()
	defer d.inFlightMu.Unlock()

	if _, busy := d.inFlight[key]; busy {
		return nil, false
	}
	d.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			d.inFlightMu.Lock()
			delete(d.inFlight, key)
			d.inFlightMu.Unlock()
		})
	}, true
}
