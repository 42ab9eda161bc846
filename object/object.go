// Package object defines the runtime value model Monkey programs
// evaluate to, and the lexically-chained Environment that binds names
// to values.
package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akashmaji946/monkey/ast"
)

// Type tags every runtime value; it doubles as the type name that
// appears verbatim in error messages (§4.3 "Type names").
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	STRING_OBJ       Type = "STRING"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "BUILTIN"
	ARRAY_OBJ        Type = "ARRAY"
	HASH_OBJ         Type = "HASH"
)

// Object is implemented by every Monkey runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is one of the two singleton truth values.
type Boolean struct{ Value bool }

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is a sequence of bytes; indexing into one is explicitly not
// supported (spec.md §9, Open Question b).
type String struct{ Value string }

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is the singleton absence-of-value.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps a value on its way out of a function or program
// boundary. It is a control-flow signal, never constructed from
// Monkey source directly.
type ReturnValue struct{ Value Object }

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is a runtime error value. Like ReturnValue, it is a
// control-flow signal: every evaluation point that consumes a
// sub-result must check for one and propagate it unchanged.
type Error struct{ Message string }

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a closure: Parameters bound positionally to call
// arguments, Body evaluated against a fresh environment enclosed by
// Env — the environment captured when the literal was evaluated.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// BuiltinFunction is the Go implementation behind a native function
// value.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a BuiltinFunction as an Object so it can be looked up
// and called like any other value.
type Builtin struct{ Fn BuiltinFunction }

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Array is an ordered, mutable-by-replacement sequence of values.
// push/rest return new arrays rather than mutating Elements in place.
type Array struct{ Elements []Object }

func (ao *Array) Type() Type { return ARRAY_OBJ }
func (ao *Array) Inspect() string {
	var out bytes.Buffer
	elems := make([]string, 0, len(ao.Elements))
	for _, e := range ao.Elements {
		elems = append(elems, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashKey is the canonical identity of a hashable value: a type tag
// plus a content hash. Two values are key-equal iff their HashKeys are
// equal.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by every Object that may be used as a hash
// key: Integer, Boolean, String.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair is one key/value entry of a Hash, retaining the original
// key object (not just its HashKey) so Inspect can display it.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is a mapping from HashKey to (key, value) pairs, with Order
// recording insertion order since Go maps do not preserve one and
// Inspect (and the language's iteration-order guarantee) depends on
// it.
type Hash struct {
	Pairs map[HashKey]HashPair
	Order []HashKey
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Order))
	for _, k := range h.Order {
		pair := h.Pairs[k]
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// Set inserts value under key, appending key to Order the first time
// it is seen and overwriting the stored pair either way.
func (h *Hash) Set(key HashKey, pair HashPair) {
	if h.Pairs == nil {
		h.Pairs = make(map[HashKey]HashPair)
	}
	if _, exists := h.Pairs[key]; !exists {
		h.Order = append(h.Order, key)
	}
	h.Pairs[key] = pair
}
