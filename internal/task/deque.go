package task

import "sync"

// deque is a hand-rolled, mutex-guarded double-ended queue standing in for
// crossbeam-deque's lock-free Worker/Stealer pair: no example repo in the
// retrieved pack vendors an equivalent lock-free structure (DESIGN.md), so
// this is plain sync.Mutex-guarded slice. The owning worker pushes and pops
// from the front; siblings steal from the back, matching the original's
// push/pop-front, steal-from-back discipline.
type deque struct {
	mu    sync.Mutex
	items []*Task
}

func newDeque() *deque { return &deque{} }

// pushFront is used by the owning worker to return a task to its own deque.
func (d *deque) pushFront(t *Task) {
	d.mu.Lock()
	d.items = append([]*Task{t}, d.items...)
	d.mu.Unlock()
}

// popFront is used only by the owning worker.
func (d *deque) popFront() *Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.items) == 0 {
		return nil
	}
	t := d.items[0]
	d.items = d.items[1:]
	return t
}

// pushBack appends a batch stolen from the injector.
func (d *deque) pushBack(tasks ...*Task) {
	if len(tasks) == 0 {
		return
	}
	d.mu.Lock()
	d.items = append(d.items, tasks...)
	d.mu.Unlock()
}

// stealBack is used by sibling workers attempting to steal from this deque.
func (d *deque) stealBack() *Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.items)
	if n == 0 {
		return nil
	}
	t := d.items[n-1]
	d.items = d.items[:n-1]
	return t
}

// injector is the shared multi-producer multi-consumer FIFO every worker
// first checks for freshly spawned tasks.
type injector struct {
	mu    sync.Mutex
	items []*Task
}

func newInjector() *injector { return &injector{} }

func (in *injector) push(t *Task) {
	in.mu.Lock()
	in.items = append(in.items, t)
	in.mu.Unlock()
}

// stealBatchAndPop moves up to batchSize-1 tasks into local's back and
// returns one task directly to the caller, or nil if the injector was
// empty.
func (in *injector) stealBatchAndPop(local *deque, batchSize int) *Task {
	in.mu.Lock()
	if len(in.items) == 0 {
		in.mu.Unlock()
		return nil
	}
	n := batchSize
	if n > len(in.items) {
		n = len(in.items)
	}
	batch := in.items[:n]
	in.items = in.items[n:]
	in.mu.Unlock()

	first := batch[0]
	if len(batch) > 1 {
		local.pushBack(batch[1:]...)
	}
	return first
}
