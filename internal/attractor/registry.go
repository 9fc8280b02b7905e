package attractor

import (
	"fmt"
	"sort"

	"github.com/san-kum/strange/internal/dynamo"
)

var factories = map[string]func() dynamo.Map{
	"clifford": func() dynamo.Map { return NewClifford() },
	"dejong":   func() dynamo.Map { return NewDeJong() },
	"svensson": func() dynamo.Map { return NewSvensson() },
}

// Lookup returns a fresh map instance with its default coefficients.
func Lookup(name string) (dynamo.Map, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown map: %s (available: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered map names in stable order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
