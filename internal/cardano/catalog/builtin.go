// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     catalog
// Description: Builtin operation table bound to the cmplxx library
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package catalog

import (
	"github.com/msto63/cardano/foundation/utils/cmplxx"
)

// Operation groups
const (
	GroupMagnitude   = "magnitude"
	GroupRoots       = "roots"
	GroupExpLog      = "exp/log"
	GroupUnary       = "unary"
	GroupTrig        = "trig"
	GroupInverseTrig = "inverse trig"
	GroupHyperbolic  = "hyperbolic"
	GroupInverseHyp  = "inverse hyperbolic"
	GroupBinary      = "binary"
	GroupScalarMixed = "scalar mixed"
)

func complexValue(z cmplxx.Complex) Value {
	return Value{Kind: ResultComplex, Complex: z}
}

func complexResult(z cmplxx.Complex, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}
	return complexValue(z), nil
}

func unary(name, group, desc string, fn func(cmplxx.Complex) cmplxx.Complex) Operation {
	return Operation{Name: name, Kind: KindUnary, Result: ResultComplex, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) { return complexValue(fn(z[0])), nil }}
}

func unaryErr(name, group, desc string, fn func(cmplxx.Complex) (cmplxx.Complex, error)) Operation {
	return Operation{Name: name, Kind: KindUnary, Result: ResultComplex, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) { return complexResult(fn(z[0])) }}
}

func scalar(name, group, desc string, fn func(cmplxx.Complex) float64) Operation {
	return Operation{Name: name, Kind: KindScalar, Result: ResultScalar, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) {
			return Value{Kind: ResultScalar, Scalar: fn(z[0])}, nil
		}}
}

func scalarErr(name, group, desc string, fn func(cmplxx.Complex) (float64, error)) Operation {
	return Operation{Name: name, Kind: KindScalar, Result: ResultScalar, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) {
			f, err := fn(z[0])
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: ResultScalar, Scalar: f}, nil
		}}
}

func binary(name, desc string, fn func(a, b cmplxx.Complex) cmplxx.Complex) Operation {
	return Operation{Name: name, Kind: KindBinary, Result: ResultComplex, Group: GroupBinary, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) { return complexValue(fn(z[0], z[1])), nil }}
}

func binaryErr(name, group, desc string, fn func(a, b cmplxx.Complex) (cmplxx.Complex, error)) Operation {
	return Operation{Name: name, Kind: KindBinary, Result: ResultComplex, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, _ float64) (Value, error) { return complexResult(fn(z[0], z[1])) }}
}

func realOp(name, group, desc string, fn func(float64) cmplxx.Complex) Operation {
	return Operation{Name: name, Kind: KindReal, Result: ResultComplex, Group: group, Description: desc,
		call: func(_ []cmplxx.Complex, x float64) (Value, error) { return complexValue(fn(x)), nil }}
}

func complexReal(name, group, desc string, fn func(cmplxx.Complex, float64) cmplxx.Complex) Operation {
	return Operation{Name: name, Kind: KindComplexReal, Result: ResultComplex, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, r float64) (Value, error) { return complexValue(fn(z[0], r)), nil }}
}

func complexRealErr(name, group, desc string, fn func(cmplxx.Complex, float64) (cmplxx.Complex, error)) Operation {
	return Operation{Name: name, Kind: KindComplexReal, Result: ResultComplex, Group: group, Description: desc,
		call: func(z []cmplxx.Complex, r float64) (Value, error) { return complexResult(fn(z[0], r)) }}
}

func builtin() []Operation {
	return []Operation{
		// magnitude
		scalar("abs2", GroupMagnitude, "squared modulus re^2 + im^2", cmplxx.Abs2),
		scalar("abs", GroupMagnitude, "modulus |z|", cmplxx.Abs),
		scalar("norm", GroupMagnitude, "alias of abs", cmplxx.Norm),
		scalarErr("arg", GroupMagnitude, "argument in (-pi, pi]", cmplxx.Arg),
		scalarErr("angle", GroupMagnitude, "alias of arg", cmplxx.Angle),

		// roots
		unary("sqrt", GroupRoots, "principal square root", cmplxx.Sqrt),
		realOp("sqrtReal", GroupRoots, "square root of a real number", cmplxx.SqrtReal),

		// exp/log
		unary("exp", GroupExpLog, "e^z", cmplxx.Exp),
		unaryErr("log", GroupExpLog, "natural logarithm", cmplxx.Log),
		unaryErr("log10", GroupExpLog, "base 10 logarithm", cmplxx.Log10),
		binaryErr("logBase", GroupExpLog, "logarithm of a in base b", cmplxx.LogBase),
		binaryErr("pow", GroupExpLog, "a^b", cmplxx.Pow),
		complexRealErr("powReal", GroupExpLog, "z^r for real r", cmplxx.PowReal),

		// unary
		unary("conjugate", GroupUnary, "complex conjugate", cmplxx.Conjugate),
		unary("negative", GroupUnary, "additive inverse", cmplxx.Negative),
		unaryErr("inverse", GroupUnary, "multiplicative inverse 1/z", cmplxx.Inverse),

		// trig
		unary("sin", GroupTrig, "sine", cmplxx.Sin),
		unary("cos", GroupTrig, "cosine", cmplxx.Cos),
		unaryErr("tan", GroupTrig, "tangent", cmplxx.Tan),
		unaryErr("sec", GroupTrig, "secant 1/cos", cmplxx.Sec),
		unaryErr("csc", GroupTrig, "cosecant 1/sin", cmplxx.Csc),
		unaryErr("cot", GroupTrig, "cotangent 1/tan", cmplxx.Cot),
		unary("sine", GroupTrig, "alias of sin", cmplxx.Sin),
		unary("cosine", GroupTrig, "alias of cos", cmplxx.Cos),
		unaryErr("tangent", GroupTrig, "alias of tan", cmplxx.Tan),

		// inverse trig
		unaryErr("asin", GroupInverseTrig, "inverse sine", cmplxx.Asin),
		unary("asinAlt", GroupInverseTrig, "inverse sine, Hull et al. algorithm", cmplxx.AsinAlt),
		realOp("asinReal", GroupInverseTrig, "inverse sine of a real number", cmplxx.AsinReal),
		unaryErr("acos", GroupInverseTrig, "inverse cosine", cmplxx.Acos),
		unaryErr("atan", GroupInverseTrig, "inverse tangent", cmplxx.Atan),
		unaryErr("asec", GroupInverseTrig, "inverse secant", cmplxx.Asec),
		unaryErr("acsc", GroupInverseTrig, "inverse cosecant", cmplxx.Acsc),
		unaryErr("acot", GroupInverseTrig, "inverse cotangent", cmplxx.Acot),

		// hyperbolic
		unary("sinh", GroupHyperbolic, "hyperbolic sine", cmplxx.Sinh),
		unary("cosh", GroupHyperbolic, "hyperbolic cosine", cmplxx.Cosh),
		unary("tanh", GroupHyperbolic, "hyperbolic tangent", cmplxx.Tanh),
		unaryErr("sech", GroupHyperbolic, "hyperbolic secant", cmplxx.Sech),
		unaryErr("csch", GroupHyperbolic, "hyperbolic cosecant", cmplxx.Csch),
		unaryErr("coth", GroupHyperbolic, "hyperbolic cotangent", cmplxx.Coth),

		// inverse hyperbolic
		unaryErr("asinh", GroupInverseHyp, "inverse hyperbolic sine", cmplxx.Asinh),
		unaryErr("acosh", GroupInverseHyp, "inverse hyperbolic cosine", cmplxx.Acosh),
		unaryErr("atanh", GroupInverseHyp, "inverse hyperbolic tangent", cmplxx.Atanh),
		unaryErr("asech", GroupInverseHyp, "inverse hyperbolic secant", cmplxx.Asech),
		unaryErr("acsch", GroupInverseHyp, "inverse hyperbolic cosecant", cmplxx.Acsch),
		unaryErr("acoth", GroupInverseHyp, "inverse hyperbolic cotangent", cmplxx.Acoth),

		// binary
		{
			Name: "areEqual", Kind: KindBinary, Result: ResultBool, Group: GroupBinary,
			Description: "exact component equality",
			call: func(z []cmplxx.Complex, _ float64) (Value, error) {
				return Value{Kind: ResultBool, Bool: cmplxx.AreEqual(z[0], z[1])}, nil
			},
		},
		binary("add", "a + b", cmplxx.Add),
		binary("sub", "a - b", cmplxx.Sub),
		binary("mult", "a * b", cmplxx.Mult),
		binaryErr("div", GroupBinary, "a / b", cmplxx.Div),

		// scalar mixed
		complexReal("multReal", GroupScalarMixed, "z * r for real r", cmplxx.MultReal),
		complexReal("multIm", GroupScalarMixed, "z * ri for real r", cmplxx.MultIm),
	}
}
