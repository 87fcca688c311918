package mistake

import (
	"fmt"
	"slices"
	"strings"
)

// Factory builds a configured Mistaker.
type Factory func(opts ...Option) (Mistaker, error)

var registry = map[string]Factory{
	"typo":  func(opts ...Option) (Mistaker, error) { return NewTypographical(opts...) },
	"merge": func(opts ...Option) (Mistaker, error) { return NewWordMerge(opts...) },
	"case":  func(opts ...Option) (Mistaker, error) { return NewCasing(opts...) },
}

// Names lists the registered variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the variant registered under name. A name of the form
// "typo+merge" builds a Chain sharing the same options.
func New(name string, opts ...Option) (Mistaker, error) {
	parts := strings.Split(name, "+")
	if len(parts) == 1 {
		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMistaker, name)
		}
		return factory(opts...)
	}

	chain := make(Chain, 0, len(parts))
	for _, part := range parts {
		m, err := New(strings.TrimSpace(part), opts...)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	return chain, nil
}
