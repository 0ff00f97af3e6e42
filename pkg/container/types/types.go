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
	"fmt"

	"golang.org/x/exp/constraints"
)

// T is the base kind of a SQL type.
type T uint8

const (
	// T_any is the unresolved placeholder type. It stands in for a type
	// that has not been determined yet during plan building.
	T_any T = iota

	T_bool

	// fixed-width integers
	T_int8
	T_int16
	T_int32
	T_int64

	// T_hugeint is the arbitrary-precision integer.
	T_hugeint

	// T_decimal is the arbitrary-precision decimal.
	T_decimal

	T_float32
	T_float64

	T_char
	T_varchar

	T_date
	T_datetime
	T_timestamp
)

// Precision of the canonical integer types: the number of decimal
// digits needed to print any value of the type, sign included.
const (
	PrecisionBit      int32 = 1
	PrecisionTinyInt  int32 = 4
	PrecisionSmallInt int32 = 7
	PrecisionInt      int32 = 11
	PrecisionBigInt   int32 = 20
)

// Precedence returns the rank of t in the promotion order. The wider
// operand of a mixed-type arithmetic expression is the one with the
// higher rank. BOOL and the string kinds share rank 1; a string never
// reaches a dominance comparison because it fails the numeric check
// first, so the tie is kept as is.
func (t T) Precedence() int32 {
	switch t {
	case T_any:
		return 0
	case T_int8:
		return 2
	case T_int16:
		return 3
	case T_int32:
		return 4
	case T_int64:
		return 5
	case T_hugeint:
		return 6
	case T_decimal:
		return 7
	case T_float32:
		return 8
	case T_float64:
		return 9
	default:
		// T_bool, the string kinds and the date/time kinds.
		return 1
	}
}

// IsNumeric reports whether t can appear as an operand of numeric
// arithmetic. BOOL counts as the one-digit integer type.
func (t T) IsNumeric() bool {
	switch t {
	case T_bool, T_int8, T_int16, T_int32, T_int64,
		T_hugeint, T_decimal, T_float32, T_float64:
		return true
	}
	return false
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOL"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_hugeint:
		return "HUGEINT"
	case T_decimal:
		return "DECIMAL"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	case T_date:
		return "DATE"
	case T_datetime:
		return "DATETIME"
	case T_timestamp:
		return "TIMESTAMP"
	}
	panic(fmt.Sprintf("unexpected type oid %d", uint8(t)))
}

// FromName maps a SQL type name back to its oid.
func FromName(name string) (T, bool) {
	for _, t := range AllTypes {
		if t.String() == name {
			return t, true
		}
	}
	return T_any, false
}

// AllTypes lists every declared base kind.
var AllTypes = []T{
	T_any, T_bool,
	T_int8, T_int16, T_int32, T_int64,
	T_hugeint, T_decimal,
	T_float32, T_float64,
	T_char, T_varchar,
	T_date, T_datetime, T_timestamp,
}

// Digits is a count of decimal digits, either a finite number or
// unlimited. Precision and scale are both expressed as Digits so that
// the unlimited sentinel can never leak into digit arithmetic. The
// zero value is finite zero.
type Digits struct {
	count     int32
	unlimited bool
}

// NewDigits returns a finite digit count.
func NewDigits(count int32) Digits {
	return Digits{count: count}
}

// UnlimitedDigits returns the unlimited digit count.
func UnlimitedDigits() Digits {
	return Digits{unlimited: true}
}

// Unlimited reports whether d has no fixed bound.
func (d Digits) Unlimited() bool {
	return d.unlimited
}

// Count returns the finite digit count; only meaningful when
// d.Unlimited() is false.
func (d Digits) Count() int32 {
	return d.count
}

// Plus returns d grown by n digits. Unlimited absorbs any growth.
func (d Digits) Plus(n int32) Digits {
	if d.unlimited {
		return d
	}
	return Digits{count: d.count + n}
}

func (d Digits) String() string {
	if d.unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("%d", d.count)
}

// MaxDigits returns the wider of a and b. Unlimited dominates.
func MaxDigits(a, b Digits) Digits {
	if a.unlimited || b.unlimited {
		return UnlimitedDigits()
	}
	return Digits{count: maxOf(a.count, b.count)}
}

func maxOf[N constraints.Ordered](a, b N) N {
	if a >= b {
		return a
	}
	return b
}

// Type describes the compile-time shape of a SQL value: its base kind
// plus numeric precision and scale. Types are pure values: structural
// equality, no mutation after construction. A Type whose scale is
// finite zero belongs to the integer family.
type Type struct {
	Oid       T
	Precision Digits
	Scale     Digits
}

// New returns the canonical descriptor of oid: the fixed precision and
// scale every plan node agrees on for that kind. It is a pure lookup
// over the closed enum; the returned value is safe to use from any
// goroutine.
func New(oid T) Type {
	switch oid {
	case T_bool:
		return Type{Oid: T_bool, Precision: NewDigits(PrecisionBit)}
	case T_int8:
		return Type{Oid: T_int8, Precision: NewDigits(PrecisionTinyInt)}
	case T_int16:
		return Type{Oid: T_int16, Precision: NewDigits(PrecisionSmallInt)}
	case T_int32:
		return Type{Oid: T_int32, Precision: NewDigits(PrecisionInt)}
	case T_int64:
		return Type{Oid: T_int64, Precision: NewDigits(PrecisionBigInt)}
	case T_hugeint:
		return Type{Oid: T_hugeint, Precision: UnlimitedDigits()}
	case T_decimal:
		return Type{Oid: T_decimal, Precision: UnlimitedDigits(), Scale: UnlimitedDigits()}
	case T_float32:
		return Type{Oid: T_float32, Precision: UnlimitedDigits(), Scale: UnlimitedDigits()}
	case T_float64:
		return Type{Oid: T_float64, Precision: UnlimitedDigits(), Scale: UnlimitedDigits()}
	case T_any, T_char, T_varchar, T_date, T_datetime, T_timestamp:
		return Type{Oid: oid}
	}
	panic(fmt.Sprintf("unexpected type oid %d", uint8(oid)))
}

// IsNumeric reports whether t is a numeric type.
func (t Type) IsNumeric() bool {
	return t.Oid.IsNumeric()
}

// IsInteger reports whether t belongs to the integer family, i.e. its
// scale is exactly zero. Any other scale, unlimited included, makes it
// a scaled or floating type.
func (t Type) IsInteger() bool {
	return !t.Scale.Unlimited() && t.Scale.Count() == 0
}

func (t Type) String() string {
	if t.IsNumeric() && t.IsInteger() && !t.Precision.Unlimited() {
		return fmt.Sprintf("%s(%s)", t.Oid, t.Precision)
	}
	return t.Oid.String()
}
