// Copyright 2022 CoralDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"github.com/coraldb/coral/pkg/common/moerr"
)

// IntegerWith returns the narrowest integer-family type able to hold
// the given number of digits. Precisions on a canonical boundary map
// to the canonical type; anything wider than BIGINT becomes a
// zero-scale DECIMAL with unlimited precision. Total over every finite
// precision and the unlimited sentinel.
func IntegerWith(precision Digits) Type {
	if precision.Unlimited() {
		return Type{Oid: T_decimal, Precision: UnlimitedDigits()}
	}
	switch p := precision.Count(); {
	case p == PrecisionBit:
		return New(T_bool)
	case p < PrecisionTinyInt:
		return Type{Oid: T_int8, Precision: precision}
	case p == PrecisionTinyInt:
		return New(T_int8)
	case p < PrecisionSmallInt:
		return Type{Oid: T_int16, Precision: precision}
	case p == PrecisionSmallInt:
		return New(T_int16)
	case p < PrecisionInt:
		return Type{Oid: T_int32, Precision: precision}
	case p == PrecisionInt:
		return New(T_int32)
	case p < PrecisionBigInt:
		return Type{Oid: T_int64, Precision: precision}
	case p == PrecisionBigInt:
		return New(T_int64)
	default:
		return Type{Oid: T_decimal, Precision: UnlimitedDigits()}
	}
}

// InferUnaryMinus resolves the result type of unary negation. The
// precision of an integer operand grows by one digit so that negating
// the most negative value of a fixed-width integer cannot overflow.
// FLOAT widens to DOUBLE; DOUBLE and DECIMAL are already the widest of
// their branch and pass through unchanged.
func InferUnaryMinus(typ Type) (Type, error) {
	if !typ.IsNumeric() {
		return Type{}, moerr.NewNotNumeric(1)
	}
	if typ.IsInteger() {
		return IntegerWith(typ.Precision.Plus(1)), nil
	}
	if typ.Oid == T_float32 {
		return New(T_float64), nil
	}
	return typ, nil
}

// InferPlusMinus resolves the result type of addition or subtraction.
// Both operands are validated; the first non-numeric one is reported
// by its 1-based index.
func InferPlusMinus(typ1, typ2 Type) (Type, error) {
	if !typ1.IsNumeric() {
		return Type{}, moerr.NewNotNumeric(1)
	}
	if !typ2.IsNumeric() {
		return Type{}, moerr.NewNotNumeric(2)
	}

	// One extra digit absorbs the carry of equal-width operands:
	// 9 + 1 = 10.
	precision := MaxDigits(typ1.Precision, typ2.Precision).Plus(1)
	scale := MaxDigits(typ1.Scale, typ2.Scale)

	if !scale.Unlimited() && scale.Count() == 0 {
		return IntegerWith(precision), nil
	}

	// The combined scale can only be unlimited here: two integer
	// operands always land in the branch above, and every non-integer
	// numeric type carries unlimited scale. The result is the operand
	// with the higher precedence, keeping its own precision and scale;
	// the combined precision computed above is discarded, as the
	// source rules do.
	dominant := typ1
	if typ2.Oid.Precedence() > typ1.Oid.Precedence() {
		dominant = typ2
	}
	if dominant.Oid == T_float32 {
		return New(T_float64), nil
	}
	return dominant, nil
}

// OrAny shields the inference rules from an absent operand type:
// callers that could not resolve a type yet pass nil and get the
// unresolved placeholder back.
func OrAny(typ *Type) Type {
	if typ == nil {
		return New(T_any)
	}
	return *typ
}
