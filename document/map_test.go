// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"slices"
	"testing"

	"github.com/z5labs/confmigrate/document/key"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFunc func(key.Keyer, any) error

func (f storeFunc) Set(k key.Keyer, v any) error {
	return f(k, v)
}

type keyerFunc func() string

func (f keyerFunc) Key() string {
	return f()
}

func TestMap_Apply(t *testing.T) {
	t.Run("will properly construct key.Chain for", func(t *testing.T) {
		testCases := []struct {
			Name   string
			M      Map
			Chains []key.Chain
		}{
			{
				Name: "single top level key",
				M: Map{
					"hello": "world",
				},
				Chains: []key.Chain{
					{key.Name("hello")},
				},
			},
			{
				Name: "multiple top level keys",
				M: Map{
					"hello": "world",
					"one":   1,
				},
				Chains: []key.Chain{
					{key.Name("hello")},
					{key.Name("one")},
				},
			},
			{
				Name: "single nested key",
				M: Map{
					"hello": map[string]any{
						"good": "bye",
					},
				},
				Chains: []key.Chain{
					{key.Name("hello"), key.Name("good")},
				},
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				var chains []key.Chain
				store := storeFunc(func(k key.Keyer, a any) error {
					chain, ok := k.(key.Chain)
					if !ok {
						chain = key.Chain{k}
					}
					chains = append(chains, slices.Clone(chain))
					return nil
				})

				err := testCase.M.Apply(store)
				require.NoError(t, err)
				require.Len(t, chains, len(testCase.Chains))

				for _, expected := range testCase.Chains {
					found := slices.ContainsFunc(chains, func(c key.Chain) bool {
						return c.Key() == expected.Key()
					})
					require.True(t, found, "missing key chain: %s", expected.Key())
				}
			})
		}
	})
}

func TestMap_Set(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the key.Keyer implementation is unknown", func(t *testing.T) {
			m := make(Map)

			err := m.Set(keyerFunc(func() string { return "hello" }), "world")

			var uerr UnknownKeyerError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.NotEmpty(t, uerr.Error()) {
				return
			}
		})

		t.Run("if the key.Chain is empty", func(t *testing.T) {
			m := make(Map)

			err := m.Set(key.Chain{}, "world")

			var eerr EmptyKeyChainError
			if !assert.ErrorAs(t, err, &eerr) {
				return
			}
			if !assert.NotEmpty(t, eerr.Error()) {
				return
			}
		})

		t.Run("if a nested key was previously set to a non map value", func(t *testing.T) {
			m := Map{
				"hello": "world",
			}

			err := m.Set(key.Chain{key.Name("hello"), key.Name("good")}, "bye")

			var terr UnexpectedKeyValueTypeError
			if !assert.ErrorAs(t, err, &terr) {
				return
			}
			if !assert.Equal(t, "hello", terr.Key) {
				return
			}
		})
	})

	t.Run("will set the value", func(t *testing.T) {
		t.Run("if the key is a single name", func(t *testing.T) {
			m := make(Map)

			err := m.Set(key.Name("hello"), "world")
			require.NoError(t, err)
			require.Equal(t, Map{"hello": "world"}, m)
		})

		t.Run("if the key is a chain of names", func(t *testing.T) {
			m := make(Map)

			err := m.Set(key.Chain{key.Name("hello"), key.Name("good")}, "bye")
			require.NoError(t, err)
			require.Equal(t, Map{
				"hello": map[string]any{
					"good": "bye",
				},
			}, m)
		})
	})
}

func TestMap_Get(t *testing.T) {
	m := Map{
		"hello": "world",
		"meta": map[string]any{
			"version": 2,
		},
	}

	testCases := []struct {
		Name        string
		Key         key.Keyer
		ExpectedVal any
		ExpectedOk  bool
	}{
		{
			Name:        "top level key",
			Key:         key.Name("hello"),
			ExpectedVal: "world",
			ExpectedOk:  true,
		},
		{
			Name:        "nested key",
			Key:         key.Chain{key.Name("meta"), key.Name("version")},
			ExpectedVal: 2,
			ExpectedOk:  true,
		},
		{
			Name:       "absent top level key",
			Key:        key.Name("good"),
			ExpectedOk: false,
		},
		{
			Name:       "nested key under a non map value",
			Key:        key.Chain{key.Name("hello"), key.Name("good")},
			ExpectedOk: false,
		},
		{
			Name:       "empty key chain",
			Key:        key.Chain{},
			ExpectedOk: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			v, ok := m.Get(testCase.Key)
			require.Equal(t, testCase.ExpectedOk, ok)
			if testCase.ExpectedOk {
				require.Equal(t, testCase.ExpectedVal, v)
			}
		})
	}
}

func TestMap_Without(t *testing.T) {
	t.Run("will remove the key", func(t *testing.T) {
		t.Run("if it is a top level key", func(t *testing.T) {
			m := Map{
				"version": 1,
				"hello":   "world",
			}

			cp := m.Without(key.Name("version"))
			require.Equal(t, Map{"hello": "world"}, cp)
			require.Contains(t, m, "version")
		})

		t.Run("if it is a nested key", func(t *testing.T) {
			m := Map{
				"meta": map[string]any{
					"version": 1,
					"owner":   "me",
				},
				"hello": "world",
			}

			cp := m.Without(key.Chain{key.Name("meta"), key.Name("version")})
			require.Equal(t, Map{
				"meta": map[string]any{
					"owner": "me",
				},
				"hello": "world",
			}, cp)

			_, ok := m.Get(key.Chain{key.Name("meta"), key.Name("version")})
			require.True(t, ok)
		})
	})

	t.Run("will return an equal copy", func(t *testing.T) {
		t.Run("if the key is absent", func(t *testing.T) {
			m := Map{
				"hello": "world",
			}

			cp := m.Without(key.Name("version"))
			require.Equal(t, m, cp)
		})

		t.Run("if a nested key path crosses a non map value", func(t *testing.T) {
			m := Map{
				"hello": "world",
			}

			cp := m.Without(key.Chain{key.Name("hello"), key.Name("good")})
			require.Equal(t, m, cp)
		})
	})
}
