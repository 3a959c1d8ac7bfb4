// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     catalog
// Description: Static, typed catalog of the cmplxx operations offered by the
//              service, the gRPC API, the CLI and the TUI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
)

// Kind describes the operands an operation takes
type Kind int

const (
	// KindUnary takes one complex operand and yields a complex value
	KindUnary Kind = iota
	// KindBinary takes two complex operands
	KindBinary
	// KindReal takes one real scalar and yields a complex value
	KindReal
	// KindComplexReal takes one complex operand and one real scalar
	KindComplexReal
	// KindScalar takes one complex operand and yields a real value
	KindScalar
)

var kindNames = map[Kind]string{
	KindUnary:       "unary",
	KindBinary:      "binary",
	KindReal:        "real",
	KindComplexReal: "complex+real",
	KindScalar:      "scalar",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Operands returns the number of complex operands and whether a real
// scalar is required
func (k Kind) Operands() (complexCount int, needsScalar bool) {
	switch k {
	case KindBinary:
		return 2, false
	case KindReal:
		return 0, true
	case KindComplexReal:
		return 1, true
	default:
		return 1, false
	}
}

// ParseKind parses a kind name as returned by Kind.String
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "unary":
		return KindUnary, true
	case "binary":
		return KindBinary, true
	case "real":
		return KindReal, true
	case "complex+real":
		return KindComplexReal, true
	case "scalar":
		return KindScalar, true
	default:
		return 0, false
	}
}

// ResultKind describes the value an operation yields
type ResultKind int

const (
	ResultComplex ResultKind = iota
	ResultScalar
	ResultBool
)

// String returns the result kind name
func (r ResultKind) String() string {
	switch r {
	case ResultComplex:
		return "complex"
	case ResultScalar:
		return "scalar"
	case ResultBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is the outcome of applying an operation
type Value struct {
	Kind    ResultKind
	Complex cmplxx.Complex
	Scalar  float64
	Bool    bool
}

// Format renders the value. Complex values use pattern, an empty pattern
// selects cmplxx.DefaultFormat.
func (v Value) Format(pattern string) string {
	switch v.Kind {
	case ResultScalar:
		return strconv.FormatFloat(v.Scalar, 'g', -1, 64)
	case ResultBool:
		return strconv.FormatBool(v.Bool)
	default:
		if pattern == "" {
			return v.Complex.String()
		}
		return v.Complex.Format(pattern)
	}
}

// String renders the value with the default pattern
func (v Value) String() string {
	return v.Format("")
}

// Args holds the explicit operands of one call. Scalar is nil when absent.
type Args struct {
	Operands []cmplxx.Complex
	Scalar   *float64
}

// Scalar returns a pointer to x for use in Args
func Scalar(x float64) *float64 {
	return &x
}

// Operation describes one catalog entry
type Operation struct {
	Name        string
	Kind        Kind
	Result      ResultKind
	Group       string
	Description string

	call func(operands []cmplxx.Complex, scalar float64) (Value, error)
}

// Signature renders the call shape, e.g. "pow(a, b)"
func (o *Operation) Signature() string {
	var params string
	switch o.Kind {
	case KindBinary:
		params = "a, b"
	case KindReal:
		params = "x"
	case KindComplexReal:
		params = "z, r"
	default:
		params = "z"
	}
	return fmt.Sprintf("%s(%s)", o.Name, params)
}

// Apply validates args against the operation kind and calls the
// underlying cmplxx function. Library errors are returned unchanged.
func (o *Operation) Apply(args Args) (Value, error) {
	if err := o.check(args); err != nil {
		return Value{}, err
	}
	var scalar float64
	if args.Scalar != nil {
		scalar = *args.Scalar
	}
	return o.call(args.Operands, scalar)
}

func (o *Operation) check(args Args) error {
	wantComplex, wantScalar := o.Kind.Operands()
	if len(args.Operands) == wantComplex && (args.Scalar != nil) == wantScalar {
		return nil
	}

	expected := fmt.Sprintf("%d complex operand(s)", wantComplex)
	if wantScalar {
		expected += " and a real scalar"
	}
	got := fmt.Sprintf("%d complex operand(s), scalar=%t", len(args.Operands), args.Scalar != nil)

	return mdwerrors.InvalidInput(mdwerrors.ModuleCatalog, "apply", got, expected).
		WithDetail("operation_name", o.Name).
		WithDetail("signature", o.Signature())
}

// Catalog is an immutable, case-insensitive index of operations
type Catalog struct {
	ops   map[string]*Operation
	names []string
}

// New builds a catalog. Names must be unique ignoring case.
func New(ops ...Operation) (*Catalog, error) {
	c := &Catalog{ops: make(map[string]*Operation, len(ops))}
	for i := range ops {
		op := ops[i]
		key := strings.ToLower(op.Name)
		if key == "" || op.call == nil {
			return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCatalog, "new", op.Name, "a named operation with an implementation")
		}
		if _, dup := c.ops[key]; dup {
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleCatalog).
				Operation("new").
				Messagef("duplicate operation %q", op.Name).
				Code(string(mdwerror.CodeInvalidInput)).
				Build()
		}
		c.ops[key] = &op
		c.names = append(c.names, op.Name)
	}
	sort.Slice(c.names, func(i, j int) bool {
		return strings.ToLower(c.names[i]) < strings.ToLower(c.names[j])
	})
	return c, nil
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog of all cmplxx operations
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtin()...)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid builtin table: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup finds an operation by name, ignoring case
func (c *Catalog) Lookup(name string) (*Operation, error) {
	op, ok := c.ops[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, mdwerrors.NotFound(mdwerrors.ModuleCatalog, "lookup", name)
	}
	return op, nil
}

// Apply looks up name and applies it to args
func (c *Catalog) Apply(name string, args Args) (Value, error) {
	op, err := c.Lookup(name)
	if err != nil {
		return Value{}, err
	}
	return op.Apply(args)
}

// Names returns the operation names sorted case-insensitively
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Operations returns all operations in name order
func (c *Catalog) Operations() []*Operation {
	out := make([]*Operation, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.ops[strings.ToLower(name)])
	}
	return out
}

// Len returns the number of operations
func (c *Catalog) Len() int {
	return len(c.names)
}
