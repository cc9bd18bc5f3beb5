package cells

import (
	"runtime"
	"sync"
	"weak"
)

// registryTable is the process-wide side table mapping cell identity to its
// private Registry. Keys are weak pointers, which are canonical per object,
// so the table can be looked up by owner without ever keeping the owner
// alive; a cleanup registered on the owner removes the entry after
// collection so it cannot be resurrected.
type registryTable struct {
	mu sync.Mutex
	m  map[any]*Registry
}

var registries = &registryTable{m: map[any]*Registry{}}

// RegistryFor returns the dependency registry owned by owner, creating it on
// first use.
func RegistryFor[T any](owner *T) *Registry {
	key := any(weak.Make(owner))

	registries.mu.Lock()
	defer registries.mu.Unlock()

	if r, ok := registries.m[key]; ok {
		return r
	}
	r := NewRegistry()
	registries.m[key] = r
	runtime.AddCleanup(owner, func(k any) {
		registries.mu.Lock()
		delete(registries.m, k)
		registries.mu.Unlock()
	}, key)
	return r
}
