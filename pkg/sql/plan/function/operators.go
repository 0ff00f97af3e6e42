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

package function

import (
	"github.com/coraldb/coral/pkg/container/types"
)

// Names of the arithmetic operators registered by this layer.
const (
	Plus       = "+"
	Minus      = "-"
	UnaryMinus = "unary_minus"
)

func init() {
	initOperators()
}

// initOperators registers the arithmetic operators. The type checks
// only gate arity: numeric validation happens inside the inference
// rules so that a non-numeric operand is attributed to its position
// instead of falling through to an undefined-function error.
func initOperators() {
	for _, op := range []struct {
		name string
		fn   Function
	}{
		{Plus, Function{
			TypeCheckFn: argCountCheck(2),
			Infer:       inferAdditive,
			Info:        "addition",
		}},
		{Minus, Function{
			TypeCheckFn: argCountCheck(2),
			Infer:       inferAdditive,
			Info:        "subtraction",
		}},
		{UnaryMinus, Function{
			TypeCheckFn: argCountCheck(1),
			Infer:       inferNegation,
			Info:        "unary negation",
		}},
	} {
		if err := appendFunction(op.name, op.fn); err != nil {
			panic(err)
		}
	}
}

func inferAdditive(args []types.Type) (types.Type, error) {
	return types.InferPlusMinus(args[0], args[1])
}

func inferNegation(args []types.Type) (types.Type, error) {
	return types.InferUnaryMinus(args[0])
}

func argCountCheck(n int) func(inputTypes, requiredTypes []types.T) bool {
	return func(inputTypes, _ []types.T) bool {
		return len(inputTypes) == n
	}
}
