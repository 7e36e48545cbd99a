// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confmigrate

import (
	"fmt"
	"math"
	"reflect"

	"github.com/z5labs/confmigrate/document"
	"github.com/z5labs/confmigrate/document/key"
)

// Migrator detects the schema version of a configuration document and
// walks its value forward through a [Chain] to the latest schema. A
// Migrator holds no mutable state and is safe for concurrent use.
type Migrator struct {
	versionKey key.Keyer
	rawKey     string
	chain      *Chain
}

// NewMigrator returns a Migrator which reads the document's version
// identifier from the field named by versionKey. A dot separated
// versionKey addresses a field nested under one or more sub maps.
func NewMigrator(versionKey string, chain *Chain) *Migrator {
	return &Migrator{
		versionKey: key.Parse(versionKey),
		rawKey:     versionKey,
		chain:      chain,
	}
}

// Result carries the outcome of a single migration.
type Result struct {
	// Value holds the value of the chain's latest schema type.
	Value any

	// SourceVersion is the version identifier detected in the input document.
	SourceVersion int64

	// Migrated reports whether any conversions were applied.
	Migrated bool
}

// Migrate reads a single document from src, decodes it into the schema
// matching its version field and converts the value forward until it is
// of the chain's latest schema type.
func (m *Migrator) Migrate(src document.Source) (Result, error) {
	doc, err := document.Read(src)
	if err != nil {
		return Result{}, ParseError{Cause: err}
	}

	raw, ok := doc.Get(m.versionKey)
	if !ok {
		return Result{}, MissingVersionFieldError{Key: m.rawKey}
	}
	version, ok := versionOf(raw)
	if !ok {
		return Result{}, InvalidVersionValueError{Key: m.rawKey, Value: raw}
	}

	pos, ok := m.chain.find(version)
	if !ok {
		return Result{}, UnknownVersionError{Version: version}
	}

	// Schemas never declare the version field themselves.
	value, err := m.chain.nodes[pos].decode(doc.Without(m.versionKey))
	if err != nil {
		return Result{}, SchemaError{Version: version, Cause: err}
	}

	for _, next := range m.chain.nodes[pos+1:] {
		value = next.convert(value)
	}

	return Result{
		Value:         value,
		SourceVersion: version,
		Migrated:      pos < len(m.chain.nodes)-1,
	}, nil
}

// Migrate runs m against src and returns the latest schema value as a T.
// T must be the schema type of the chain's latest version.
func Migrate[T any](m *Migrator, src document.Source) (T, Result, error) {
	var zero T
	res, err := m.Migrate(src)
	if err != nil {
		return zero, Result{}, err
	}

	v, ok := res.Value.(T)
	if !ok {
		return zero, Result{}, LatestSchemaError{
			Latest:    reflect.TypeOf(res.Value),
			Requested: reflect.TypeOf((*T)(nil)).Elem(),
		}
	}
	return v, res, nil
}

func versionOf(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case reflect.Float32, reflect.Float64:
		// JSON numbers always arrive as float64.
		f := rv.Float()
		n := int64(f)
		if float64(n) != f {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ParseError occurs when the document source cannot be parsed.
type ParseError struct {
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

// MissingVersionFieldError occurs when the version field is absent from the
// parsed document. The document version is never silently defaulted.
type MissingVersionFieldError struct {
	Key string
}

// Error implements the error interface.
func (e MissingVersionFieldError) Error() string {
	return fmt.Sprintf("document does not contain the version field: %s", e.Key)
}

// InvalidVersionValueError occurs when the version field is present but its
// value is not an integer version identifier.
type InvalidVersionValueError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e InvalidVersionValueError) Error() string {
	return fmt.Sprintf("version field %s does not contain an integer version: %v", e.Key, e.Value)
}

// UnknownVersionError occurs when the detected version has no matching
// schema version registered in the chain.
type UnknownVersionError struct {
	Version int64
}

// Error implements the error interface.
func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("no schema registered for version: %d", e.Version)
}

// SchemaError occurs when the document fields do not satisfy the schema
// matching the detected version.
type SchemaError struct {
	Version int64
	Cause   error
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	return fmt.Sprintf("document does not satisfy the version %d schema: %s", e.Version, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e SchemaError) Unwrap() error {
	return e.Cause
}

// LatestSchemaError occurs when [Migrate] is instantiated with a type
// other than the chain's latest schema type.
type LatestSchemaError struct {
	Latest    reflect.Type
	Requested reflect.Type
}

// Error implements the error interface.
func (e LatestSchemaError) Error() string {
	return fmt.Sprintf("latest schema is %s not %s", e.Latest, e.Requested)
}
