// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     catalog
// Description: Parsing of textual operands for the CLI and the TUI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
)

// constants accepted in place of a number, optionally negated
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"inf": math.Inf(1),
	"nan": math.NaN(),
}

// ParseNumber parses a float or one of the constants pi, e, inf and nan
func ParseNumber(s string) (float64, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	sign := 1.0
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		sign, text = -1, rest
	} else if rest, ok := strings.CutPrefix(text, "+"); ok {
		text = rest
	}
	if v, ok := constants[text]; ok {
		return sign * v, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || text == "" || strings.ContainsAny(text[:1], "+-") {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleCatalog, "parse", s, "a number, pi or e")
	}
	return sign * v, nil
}

// Arity returns how many numbers ParseArgs expects: two per complex operand
// plus one for the scalar
func (o *Operation) Arity() int {
	complexCount, needsScalar := o.Kind.Operands()
	n := 2 * complexCount
	if needsScalar {
		n++
	}
	return n
}

// Usage renders the textual argument form, e.g. "multReal re im r"
func (o *Operation) Usage() string {
	complexCount, needsScalar := o.Kind.Operands()
	parts := []string{o.Name}
	for i := 0; i < complexCount; i++ {
		if complexCount > 1 {
			parts = append(parts, fmt.Sprintf("re%d im%d", i+1, i+1))
		} else {
			parts = append(parts, "re im")
		}
	}
	if needsScalar {
		if complexCount == 0 {
			parts = append(parts, "x")
		} else {
			parts = append(parts, "r")
		}
	}
	return strings.Join(parts, " ")
}

// ParseArgs converts numbers into the operands of o. Each complex operand is
// given as its real and imaginary part; a real scalar comes last.
func (o *Operation) ParseArgs(fields []string) (Args, error) {
	if len(fields) != o.Arity() {
		return Args{}, mdwerrors.InvalidInput(mdwerrors.ModuleCatalog, "parse", len(fields),
			fmt.Sprintf("%d numbers", o.Arity())).
			WithDetail("operation_name", o.Name).
			WithDetail("usage", o.Usage())
	}

	numbers := make([]float64, len(fields))
	for i, f := range fields {
		v, err := ParseNumber(f)
		if err != nil {
			return Args{}, err
		}
		numbers[i] = v
	}

	complexCount, needsScalar := o.Kind.Operands()
	args := Args{Operands: make([]cmplxx.Complex, 0, complexCount)}
	for i := 0; i < complexCount; i++ {
		args.Operands = append(args.Operands, cmplxx.New(numbers[2*i], numbers[2*i+1]))
	}
	if needsScalar {
		args.Scalar = Scalar(numbers[len(numbers)-1])
	}
	return args, nil
}
