// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"github.com/z5labs/confmigrate/document/key"
)

// Map is an ordinary map[string]any but implements both
// the Source and Store interfaces.
type Map map[string]any

// Apply implements the Source interface. It recursively walks the underlying
// map to find key value pairs to set on the given store.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, chain key.Chain) error {
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			err := walkMap(x, store, append(chain, key.Name(k)))
			if err != nil {
				return err
			}
		default:
			err := store.Set(append(chain, key.Name(k)), x)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Get returns the value stored under the given key. A [key.Chain]
// addresses values nested under one or more sub maps.
func (m Map) Get(k key.Keyer) (any, bool) {
	chain, ok := k.(key.Chain)
	if !ok {
		v, ok := m[k.Key()]
		return v, ok
	}
	return getKeyChain(m, chain)
}

func getKeyChain(m map[string]any, chain key.Chain) (any, bool) {
	if len(chain) == 0 {
		return nil, false
	}

	v, ok := m[chain[0].Key()]
	if !ok || len(chain) == 1 {
		return v, ok
	}

	subM, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return getKeyChain(subM, chain[1:])
}

// Without returns a copy of the map with the given key removed. Only the
// maps along the key path are copied; values are shared with the receiver.
func (m Map) Without(k key.Keyer) Map {
	chain, ok := k.(key.Chain)
	if !ok {
		chain = key.Chain{key.Name(k.Key())}
	}
	return withoutKeyChain(m, chain)
}

func withoutKeyChain(m map[string]any, chain key.Chain) Map {
	cp := make(Map, len(m))
	for k, v := range m {
		cp[k] = v
	}
	if len(chain) == 0 {
		return cp
	}

	root := chain[0].Key()
	if len(chain) == 1 {
		delete(cp, root)
		return cp
	}

	subM, ok := cp[root].(map[string]any)
	if !ok {
		return cp
	}
	cp[root] = map[string]any(withoutKeyChain(subM, chain[1:]))
	return cp
}
