// queue.go - work queue: shared injector + per-worker deques + stealing
//
// (c) 2026- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package pwalk

import (
	"sync"
)

// injectorBatchSize bounds how many tasks a worker pulls out of the
// shared injector in one go. Directory enumeration produces bursts of
// children; moving a whole burst into a local deque in one locked
// section amortizes synchronization cost instead of paying it per task.
const injectorBatchSize = 32

// task is a Path awaiting processing (spec §3). kindKnown/kind let a
// Worker skip a redundant Classify call for a child whose type the
// Directory Reader already read off the raw getdents/readdir buffer;
// the root task always arrives with kindKnown false since nothing
// read it from a parent directory.
type task struct {
	path      string
	kind      entryKind
	kindKnown bool
}

// injector is the shared multi-producer, multi-consumer task pool that
// Workers push newly discovered children into. It is deliberately a
// plain mutex-guarded slice, not a lock-free ring buffer: it is locked
// once per expanded directory (one pushAll of all its children) and once
// per batch drain when a worker's own deque goes empty, so a simple
// structure that is easy to reason about wins over a fancier one.
type injector struct {
	mu    sync.Mutex
	tasks []task
}

func newInjector() *injector {
	return &injector{}
}

// push adds a single task to the injector. Used to seed the root task;
// Workers hand off expanded children through pushAll instead.
func (in *injector) push(t task) {
	in.mu.Lock()
	in.tasks = append(in.tasks, t)
	in.mu.Unlock()
}

// pushAll adds a batch of tasks in one locked section.
func (in *injector) pushAll(ts []task) {
	if len(ts) == 0 {
		return
	}
	in.mu.Lock()
	in.tasks = append(in.tasks, ts...)
	in.mu.Unlock()
}

// drainBatch removes and returns up to max tasks from the front of the
// injector. Returns nil if the injector is empty.
func (in *injector) drainBatch(max int) []task {
	in.mu.Lock()
	defer in.mu.Unlock()

	if len(in.tasks) == 0 {
		return nil
	}
	n := max
	if n > len(in.tasks) {
		n = len(in.tasks)
	}
	batch := append([]task(nil), in.tasks[:n]...)
	in.tasks = in.tasks[n:]
	return batch
}

func (in *injector) empty() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.tasks) == 0
}

// deque is a single Worker's local task queue. The owner pushes onto
// the back (the rest of a batch drained from the injector) and pops
// from the front, in FIFO order, so the oldest-seen work goes first and
// breadth-first memory growth stays bounded, per the spec's fairness
// note. Thieves take from the back, the end opposite the owner's pops.
type deque struct {
	mu    sync.Mutex
	tasks []task
}

func newDeque() *deque {
	return &deque{}
}

// pushBack adds a task to the owner's end of the deque.
func (d *deque) pushBack(t task) {
	d.mu.Lock()
	d.tasks = append(d.tasks, t)
	d.mu.Unlock()
}

// pushAllBack adds a batch of tasks, preserving order.
func (d *deque) pushAllBack(ts []task) {
	if len(ts) == 0 {
		return
	}
	d.mu.Lock()
	d.tasks = append(d.tasks, ts...)
	d.mu.Unlock()
}

// popFront removes and returns the oldest task in the deque, for the
// owning Worker only.
func (d *deque) popFront() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.tasks) == 0 {
		return task{}, false
	}
	t := d.tasks[0]
	d.tasks = d.tasks[1:]
	return t, true
}

// stealBack removes and returns the newest task in the deque, for a
// thief Worker.
func (d *deque) stealBack() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.tasks)
	if n == 0 {
		return task{}, false
	}
	t := d.tasks[n-1]
	d.tasks = d.tasks[:n-1]
	return t, true
}

func (d *deque) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}

// workQueue ties the shared injector to one deque per Worker and
// implements the steal order from spec §4.3: (a) batch-steal from the
// injector into the thief's own deque and pop one, (b) failing that,
// steal a single task from each peer's deque in turn.
type workQueue struct {
	global  *injector
	deques  []*deque
	workers int
}

func newWorkQueue(workers int) *workQueue {
	q := &workQueue{
		global:  newInjector(),
		deques:  make([]*deque, workers),
		workers: workers,
	}
	for i := range q.deques {
		q.deques[i] = newDeque()
	}
	return q
}

// pushRoot seeds the injector with the walk's starting path.
func (q *workQueue) pushRoot(path string) {
	q.global.push(task{path: path})
}

// pushChildren is how a Worker hands off newly discovered children: it
// always goes through the shared injector, never directly into a peer's
// deque, so ownership of the steal protocol stays uniform.
func (q *workQueue) pushChildren(children []childEntry) {
	if len(children) == 0 {
		return
	}
	ts := make([]task, len(children))
	for i, c := range children {
		ts[i] = task{path: c.path, kind: c.kind, kindKnown: c.kindKnown}
	}
	q.global.pushAll(ts)
}

// popLocal returns a task from id's own deque, if any.
func (q *workQueue) popLocal(id int) (task, bool) {
	return q.deques[id].popFront()
}

// steal implements one steal attempt for Worker id: batch-steal from
// the injector first, then one task from each peer deque in order.
// Returns (task{}, false) only if every source was observed empty.
func (q *workQueue) steal(id int) (task, bool) {
	if batch := q.global.drainBatch(injectorBatchSize); len(batch) > 0 {
		local := q.deques[id]
		if len(batch) > 1 {
			local.pushAllBack(batch[1:])
		}
		return batch[0], true
	}

	for i := 0; i < q.workers; i++ {
		if i == id {
			continue
		}
		if t, ok := q.deques[i].stealBack(); ok {
			return t, true
		}
	}

	return task{}, false
}

// globallyEmpty reports whether the injector and every deque are empty,
// observed at a single instant. It is one ingredient of the termination
// protocol (§4.6); by itself it is not sufficient proof of quiescence
// because a peer may be mid-expansion - see coordinator.go.
func (q *workQueue) globallyEmpty() bool {
	if !q.global.empty() {
		return false
	}
	for _, d := range q.deques {
		if d.len() > 0 {
			return false
		}
	}
	return true
}
