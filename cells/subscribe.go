package cells

import "sync"

// refreshFunc adapts a plain callback to the Dependent contract.
type refreshFunc struct {
	fn func()
}

func (r *refreshFunc) Refresh() {
	r.fn()
}

// Subscription is the opaque handle for one registered edge. Disposing it
// removes exactly that edge; a second Dispose is a safe no-op. The handle is
// the only strong holder of the callback: the registry edge is weak, so a
// handle dropped without Dispose eventually stops receiving signals on its
// own.
type Subscription struct {
	mu   sync.Mutex
	hold *refreshFunc
	reg  *Registry
	edge *edge
}

// Publisher is any node that can be listened to for refresh signals. All
// cell and view types in this package are publishers.
type Publisher interface {
	deps() *Registry
}

// OnRefresh registers fn to run on every refresh signal v emits. The current
// value is not replayed; only changes after registration are observed.
func OnRefresh(v Publisher, fn func()) *Subscription {
	d := &refreshFunc{fn: fn}
	reg := v.deps()
	e := weakDependent(d)
	reg.add(e)
	return &Subscription{hold: d, reg: reg, edge: e}
}

func (s *Subscription) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hold == nil {
		return
	}
	s.hold = nil
	s.reg.remove(s.edge)
}
