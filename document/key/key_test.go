// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		Name     string
		Chain    Chain
		Expected string
	}{
		{
			Name:     "empty chain",
			Chain:    Chain{},
			Expected: "",
		},
		{
			Name:     "single name",
			Chain:    Chain{Name("hello")},
			Expected: "hello",
		},
		{
			Name:     "multiple names",
			Chain:    Chain{Name("hello"), Name("good"), Name("bye")},
			Expected: "hello.good.bye",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, testCase.Chain.Key())
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		Name     string
		Path     string
		Expected Keyer
	}{
		{
			Name:     "single name",
			Path:     "version",
			Expected: Name("version"),
		},
		{
			Name:     "nested path",
			Path:     "meta.version",
			Expected: Chain{Name("meta"), Name("version")},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			k := Parse(testCase.Path)
			require.Equal(t, testCase.Expected, k)
			require.Equal(t, testCase.Path, k.Key())
		})
	}
}
