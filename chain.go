// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confmigrate

import (
	"fmt"
	"reflect"

	"github.com/z5labs/confmigrate/document"
)

// Node binds a declared schema version to its decoding and conversion
// behaviour. Nodes are constructed with [SchemaVersion] and
// [SchemaVersionFrom] and are only useful when given to [NewChain].
type Node struct {
	version int64
	schema  reflect.Type
	from    reflect.Type
	decode  func(document.Map) (any, error)
	convert func(any) any
}

// Version returns the declared version identifier.
func (n Node) Version() int64 {
	return n.version
}

// SchemaVersion declares the oldest supported schema version of a chain.
// Migrating a document of this version begins with a plain decode into T.
func SchemaVersion[T any](version int64) Node {
	return Node{
		version: version,
		schema:  reflect.TypeOf((*T)(nil)).Elem(),
		decode:  decodeInto[T],
	}
}

// SchemaVersionFrom declares a schema version whose values are produced by
// converting the immediately preceding version's values. The conversion
// must be total: every value of Prev converts to a value of T.
func SchemaVersionFrom[Prev, T any](version int64, convert func(Prev) T) Node {
	return Node{
		version: version,
		schema:  reflect.TypeOf((*T)(nil)).Elem(),
		from:    reflect.TypeOf((*Prev)(nil)).Elem(),
		decode:  decodeInto[T],
		convert: func(v any) any {
			return convert(v.(Prev))
		},
	}
}

func decodeInto[T any](doc document.Map) (any, error) {
	var v T
	err := doc.Decode(&v, document.RequireAllFields())
	return v, err
}

// Chain is an immutable, ordered registry of schema versions. The last
// declared version is the latest version. A Chain is safe for concurrent
// use by any number of [Migrator]s once constructed.
type Chain struct {
	nodes []Node
}

// NewChain validates the given nodes and builds a chain from them. Nodes
// must be declared in ascending version order, the first with
// [SchemaVersion] and every following one with [SchemaVersionFrom] where
// Prev is the schema type of the node immediately before it.
func NewChain(nodes ...Node) (*Chain, error) {
	if len(nodes) == 0 {
		return nil, EmptyChainError{}
	}
	if nodes[0].convert != nil {
		return nil, DanglingConversionError{Version: nodes[0].version}
	}

	for i := 1; i < len(nodes); i++ {
		prev, cur := nodes[i-1], nodes[i]
		if cur.version == prev.version {
			return nil, DuplicateVersionError{Version: cur.version}
		}
		if cur.version < prev.version {
			return nil, OutOfOrderVersionsError{Previous: prev.version, Version: cur.version}
		}
		if cur.convert == nil {
			return nil, MissingConversionError{Version: cur.version}
		}
		if cur.from != prev.schema {
			return nil, SchemaMismatchError{Version: cur.version, Expected: prev.schema, Declared: cur.from}
		}
	}

	c := &Chain{
		nodes: make([]Node, len(nodes)),
	}
	copy(c.nodes, nodes)
	return c, nil
}

// Len returns the number of registered versions.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Latest returns the version identifier of the latest registered version.
func (c *Chain) Latest() int64 {
	return c.nodes[len(c.nodes)-1].version
}

// Versions returns all registered version identifiers in ascending order.
func (c *Chain) Versions() []int64 {
	vs := make([]int64, len(c.nodes))
	for i, n := range c.nodes {
		vs[i] = n.version
	}
	return vs
}

func (c *Chain) find(version int64) (int, bool) {
	for i, n := range c.nodes {
		if n.version == version {
			return i, true
		}
	}
	return 0, false
}

// EmptyChainError occurs when a chain is constructed with zero schema versions.
type EmptyChainError struct{}

// Error implements the error interface.
func (e EmptyChainError) Error() string {
	return "chain must declare at least one schema version"
}

// OutOfOrderVersionsError occurs when successive schema versions are not
// declared in strictly ascending version order.
type OutOfOrderVersionsError struct {
	Previous int64
	Version  int64
}

// Error implements the error interface.
func (e OutOfOrderVersionsError) Error() string {
	return fmt.Sprintf("schema version %d declared after version %d", e.Version, e.Previous)
}

// DuplicateVersionError occurs when two schema versions share a version identifier.
type DuplicateVersionError struct {
	Version int64
}

// Error implements the error interface.
func (e DuplicateVersionError) Error() string {
	return fmt.Sprintf("schema version %d declared more than once", e.Version)
}

// DanglingConversionError occurs when the first schema version of a chain
// declares a conversion, since there is no predecessor to convert from.
type DanglingConversionError struct {
	Version int64
}

// Error implements the error interface.
func (e DanglingConversionError) Error() string {
	return fmt.Sprintf("oldest schema version %d must not declare a conversion", e.Version)
}

// MissingConversionError occurs when a schema version with a predecessor
// declares no conversion from it.
type MissingConversionError struct {
	Version int64
}

// Error implements the error interface.
func (e MissingConversionError) Error() string {
	return fmt.Sprintf("schema version %d must declare a conversion from its predecessor", e.Version)
}

// SchemaMismatchError occurs when a schema version declares a conversion
// from a type other than its predecessor's schema type.
type SchemaMismatchError struct {
	Version  int64
	Expected reflect.Type
	Declared reflect.Type
}

// Error implements the error interface.
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema version %d converts from %s instead of its predecessor's schema %s", e.Version, e.Declared, e.Expected)
}
