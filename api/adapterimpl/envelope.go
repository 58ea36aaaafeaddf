package adapterimpl

import (
	"fmt"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
)

// unwrapList extracts the item list from a decoded payload.
// keys are tried in order and a dotted key walks nested objects ("data.posts").
// A payload that is itself a list is used directly.
func unwrapList(desc platform.Descriptor, payload any, keys ...string) ([]platform.Item, error) {
	switch v := payload.(type) {
	case []any:
		return toItems(v), nil
	case map[string]any:
		for _, key := range keys {
			found, ok := lookupPath(v, key)
			if !ok {
				continue
			}
			switch list := found.(type) {
			case nil:
				return []platform.Item{}, nil
			case []any:
				return toItems(list), nil
			}
		}
		return nil, failure.New(platform.ErrMalformedResponse,
			failure.Message(fmt.Sprintf("%s response has no %s list", desc.Name, strings.Join(keys, "/"))),
			failure.Context{
				"platform": desc.ID.String(),
				"keys":     strings.Join(keys, ","),
			},
		)
	default:
		return nil, failure.New(platform.ErrMalformedResponse,
			failure.Message(fmt.Sprintf("%s returned an unexpected payload", desc.Name)),
			failure.Context{
				"platform": desc.ID.String(),
				"type":     fmt.Sprintf("%T", payload),
			},
		)
	}
}

func lookupPath(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = m
	for _, p := range parts {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func toItems(list []any) []platform.Item {
	items := make([]platform.Item, 0, len(list))
	for _, e := range list {
		items = append(items, toItem(e))
	}
	return items
}

// toItem keeps objects as they are and boxes anything else under "value"
func toItem(v any) platform.Item {
	switch obj := v.(type) {
	case map[string]any:
		return platform.Item(obj)
	case nil:
		return platform.Item{}
	default:
		return platform.Item{"value": v}
	}
}
