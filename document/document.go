// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package document provides a format agnostic, key value representation of configuration documents.
//
// A configuration document is produced by applying one or more [Source]s to
// a [Map]. Sources exist for YAML, JSON and TOML text, so the packages which
// consume documents never need to know which textual format they originated
// from. Once read, a document can be inspected field by field or decoded
// into a struct.
package document

import (
	"github.com/z5labs/confmigrate/document/key"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid document sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Read applies the given sources, in order, to a single document.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (Map, error) {
	m := make(Map)
	for _, src := range srcs {
		err := src.Apply(m)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
