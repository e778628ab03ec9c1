package activation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	ErrUnknown   = errors.New("activation: unknown function")
	ErrEmptyName = errors.New("activation: function name is empty")
)

var (
	mu       sync.RWMutex
	registry = map[string]Function{
		NameSigmoid:  Sigmoid,
		NameTanh:     Tanh,
		NameReLU:     ReLU,
		NameIdentity: Identity,
	}
)

// Register makes f resolvable by name so networks using it can be loaded.
// Registering an existing name replaces the previous function.
func Register(f Function) error {
	if f == nil || f.Name() == "" {
		return ErrEmptyName
	}
	mu.Lock()
	defer mu.Unlock()
	registry[f.Name()] = f
	return nil
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f, nil
}

// Names returns every registered name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
