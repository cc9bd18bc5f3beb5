package cells

import (
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

// edge is one publisher→dependent registration. Dependents are held weakly:
// being listened to never by itself keeps a dependent alive, so resolve may
// report that the entry has expired.
type edge struct {
	resolve func() (Dependent, bool)
}

// weakDependent wraps d in an edge holding it through a weak pointer.
func weakDependent[T any, PT interface {
	*T
	Dependent
}](d PT) *edge {
	p := weak.Make((*T)(d))
	return &edge{
		resolve: func() (Dependent, bool) {
			if v := p.Value(); v != nil {
				return PT(v), true
			}
			return nil, false
		},
	}
}

// Registry is the per-publisher dependent set. The set is safe for
// concurrent add/remove/iterate, including a dependent registering or
// deregistering itself from within its own refresh callback.
type Registry struct {
	edges mapset.Set[*edge]
}

func NewRegistry() *Registry {
	return &Registry{edges: mapset.NewSet[*edge]()}
}

func (r *Registry) add(e *edge) {
	r.edges.Add(e)
}

func (r *Registry) remove(e *edge) {
	r.edges.Remove(e)
}

// Signal delivers a refresh to every currently registered dependent that is
// still alive. The set is snapshotted before iterating so no lock is held
// across a callback; expired entries are pruned as they are found.
func (r *Registry) Signal() {
	for _, e := range r.edges.ToSlice() {
		d, ok := e.resolve()
		if !ok {
			r.edges.Remove(e)
			continue
		}
		d.Refresh()
	}
}
