package registry

import (
	"fmt"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// Registry indexes adapters by platform id and remembers their order.
// It is built once and only read afterwards.
type Registry struct {
	order    []platform.ID
	adapters map[platform.ID]adapter.Adapter
}

// New builds a registry from adapters. Order is kept; a later duplicate id replaces the earlier adapter in place.
func New(adapters ...adapter.Adapter) *Registry {
	r := &Registry{
		adapters: make(map[platform.ID]adapter.Adapter, len(adapters)),
	}
	for _, a := range adapters {
		id := a.Descriptor().ID
		if _, ok := r.adapters[id]; !ok {
			r.order = append(r.order, id)
		}
		r.adapters[id] = a
	}
	return r
}

// Lookup returns the descriptor of a platform
func (r *Registry) Lookup(id platform.ID) (platform.Descriptor, error) {
	a, err := r.Adapter(id)
	if err != nil {
		return platform.Descriptor{}, err
	}
	return a.Descriptor(), nil
}

// Adapter returns the adapter of a platform
func (r *Registry) Adapter(id platform.ID) (adapter.Adapter, error) {
	a, ok := r.adapters[id]
	if !ok {
		return nil, failure.New(platform.ErrNotFound,
			failure.Message(fmt.Sprintf("unknown platform: %s", id)),
			failure.Context{
				"platform": id.String(),
			},
		)
	}
	return a, nil
}

// All returns every descriptor in registry order
func (r *Registry) All() []platform.Descriptor {
	return lo.Map(r.order, func(id platform.ID, _ int) platform.Descriptor {
		return r.adapters[id].Descriptor()
	})
}

// IDs returns every platform id in registry order
func (r *Registry) IDs() []platform.ID {
	return append([]platform.ID(nil), r.order...)
}

// Select resolves ids to adapters in registry order, dropping duplicates.
// No ids selects the whole registry. An unknown id fails the whole selection.
func (r *Registry) Select(ids ...platform.ID) ([]adapter.Adapter, error) {
	if len(ids) == 0 {
		return lo.Map(r.order, func(id platform.ID, _ int) adapter.Adapter {
			return r.adapters[id]
		}), nil
	}

	want := make(map[platform.ID]bool, len(ids))
	for _, id := range ids {
		if _, err := r.Adapter(id); err != nil {
			return nil, err
		}
		want[id] = true
	}

	selected := make([]adapter.Adapter, 0, len(want))
	for _, id := range r.order {
		if want[id] {
			selected = append(selected, r.adapters[id])
		}
	}
	return selected, nil
}
