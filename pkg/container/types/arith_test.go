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
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"

	"github.com/coraldb/coral/pkg/common/moerr"
)

func TestIntegerWithBuckets(t *testing.T) {
	cases := []struct {
		precision Digits
		want      Type
	}{
		{UnlimitedDigits(), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
		{NewDigits(1), New(T_bool)},
		{NewDigits(2), Type{Oid: T_int8, Precision: NewDigits(2)}},
		{NewDigits(3), Type{Oid: T_int8, Precision: NewDigits(3)}},
		{NewDigits(4), New(T_int8)},
		{NewDigits(5), Type{Oid: T_int16, Precision: NewDigits(5)}},
		{NewDigits(6), Type{Oid: T_int16, Precision: NewDigits(6)}},
		{NewDigits(7), New(T_int16)},
		{NewDigits(8), Type{Oid: T_int32, Precision: NewDigits(8)}},
		{NewDigits(10), Type{Oid: T_int32, Precision: NewDigits(10)}},
		{NewDigits(11), New(T_int32)},
		{NewDigits(12), Type{Oid: T_int64, Precision: NewDigits(12)}},
		{NewDigits(19), Type{Oid: T_int64, Precision: NewDigits(19)}},
		{NewDigits(20), New(T_int64)},
		{NewDigits(21), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
		{NewDigits(38), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IntegerWith(c.precision), "precision %s", c.precision)
	}
}

// IntegerWith is total: every precision maps to exactly one
// integer-family type wide enough to hold it.
func TestIntegerWithTotality(t *testing.T) {
	allowed := map[T]bool{
		T_bool: true, T_int8: true, T_int16: true,
		T_int32: true, T_int64: true, T_decimal: true,
	}
	for p := int32(1); p <= 64; p++ {
		typ := IntegerWith(NewDigits(p))
		require.True(t, allowed[typ.Oid], "precision %d mapped to %s", p, typ.Oid)
		require.True(t, typ.IsInteger(), "precision %d result must be integer family", p)
		if typ.Precision.Unlimited() {
			continue
		}
		require.GreaterOrEqual(t, typ.Precision.Count(), p, "precision %d", p)
	}

	typ := IntegerWith(UnlimitedDigits())
	require.Equal(t, T_decimal, typ.Oid)
	require.True(t, typ.Precision.Unlimited())
	require.True(t, typ.IsInteger())
}

func TestInferUnaryMinus(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want Type
	}{
		// one digit is reserved so that negating the most negative
		// value cannot overflow
		{"bool grows to tinyint", New(T_bool), Type{Oid: T_int8, Precision: NewDigits(2)}},
		{"tinyint grows within smallint", New(T_int8), Type{Oid: T_int16, Precision: NewDigits(5)}},
		{"int grows into bigint", New(T_int32), Type{Oid: T_int64, Precision: NewDigits(12)}},
		{"bigint overflows to decimal", New(T_int64), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
		{"hugeint stays unlimited", New(T_hugeint), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
		{"float widens to double", New(T_float32), New(T_float64)},
		{"double unchanged", New(T_float64), New(T_float64)},
		{"decimal unchanged", New(T_decimal), New(T_decimal)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := InferUnaryMinus(c.typ)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestInferUnaryMinusNotNumeric(t *testing.T) {
	for _, oid := range []T{T_any, T_varchar, T_date} {
		_, err := InferUnaryMinus(New(oid))
		require.Error(t, err)
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotNumeric))
		require.EqualError(t, err, "operand 1 is not numeric")
	}
}

func TestInferPlusMinus(t *testing.T) {
	convey.Convey("test plus minus type inference", t, func() {
		cases := []struct {
			typ1 Type
			typ2 Type
			want Type
		}{
			// max(4,7)+1 = 8 digits, still an INT
			{New(T_int8), New(T_int16), Type{Oid: T_int32, Precision: NewDigits(8)}},
			// equal widths still gain the carry digit
			{New(T_int32), New(T_int32), Type{Oid: T_int64, Precision: NewDigits(12)}},
			// widest fixed integers spill into decimal
			{New(T_int64), New(T_int64), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
			// unlimited integer precision propagates
			{New(T_hugeint), New(T_int32), Type{Oid: T_decimal, Precision: UnlimitedDigits()}},
			{New(T_bool), New(T_bool), Type{Oid: T_int8, Precision: NewDigits(2)}},
			// the higher-precedence operand wins, either side
			{New(T_float64), New(T_decimal), New(T_float64)},
			{New(T_decimal), New(T_float64), New(T_float64)},
			{New(T_decimal), New(T_int32), New(T_decimal)},
			{New(T_int32), New(T_float32), New(T_float64)},
			// float tie resolves to the first operand, then widens
			{New(T_float32), New(T_float32), New(T_float64)},
			{New(T_float64), New(T_float64), New(T_float64)},
			{New(T_decimal), New(T_hugeint), New(T_decimal)},
		}
		for _, c := range cases {
			got, err := InferPlusMinus(c.typ1, c.typ2)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, c.want)
		}
	})
}

func TestInferPlusMinusNotNumeric(t *testing.T) {
	cases := []struct {
		typ1    Type
		typ2    Type
		wantMsg string
	}{
		{New(T_varchar), New(T_int32), "operand 1 is not numeric"},
		{New(T_int32), New(T_varchar), "operand 2 is not numeric"},
		{New(T_varchar), New(T_varchar), "operand 1 is not numeric"},
		{New(T_any), New(T_float64), "operand 1 is not numeric"},
		{New(T_float64), New(T_datetime), "operand 2 is not numeric"},
	}
	for _, c := range cases {
		_, err := InferPlusMinus(c.typ1, c.typ2)
		require.Error(t, err)
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotNumeric))
		require.EqualError(t, err, c.wantMsg)
	}
}

func TestOrAny(t *testing.T) {
	require.Equal(t, New(T_any), OrAny(nil))

	typ := New(T_int64)
	require.Equal(t, typ, OrAny(&typ))

	// idempotent
	once := OrAny(nil)
	twice := OrAny(&once)
	require.Equal(t, once, twice)
}
