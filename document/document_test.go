// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceFunc func(Store) error

func (f sourceFunc) Apply(store Store) error {
	return f(store)
}

func TestRead(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a source fails to apply", func(t *testing.T) {
			applyErr := errors.New("failed to apply")
			src := sourceFunc(func(store Store) error {
				return applyErr
			})

			_, err := Read(src)
			if !assert.ErrorIs(t, err, applyErr) {
				return
			}
		})
	})

	t.Run("will read a document", func(t *testing.T) {
		t.Run("if no sources are given", func(t *testing.T) {
			m, err := Read()
			require.NoError(t, err)
			require.Empty(t, m)
		})

		t.Run("if subsequent sources override previous sources", func(t *testing.T) {
			m, err := Read(
				FromYaml(strings.NewReader(`version: 1
name: MyApp`)),
				FromToml(strings.NewReader(`version = 2`)),
			)
			require.NoError(t, err)
			require.Equal(t, Map{
				"version": int64(2),
				"name":    "MyApp",
			}, m)
		})
	})
}
