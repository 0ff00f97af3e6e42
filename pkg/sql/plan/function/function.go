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
	"fmt"
	"sync"

	"github.com/coraldb/coral/pkg/common/moerr"
	"github.com/coraldb/coral/pkg/container/types"
)

var (
	// an empty function structure just for return when we couldn't meet any function.
	emptyFunction = Function{}
)

// Function is an overload of an operator or a built-in function. The
// expression builder resolves one while constructing a plan node and
// uses Infer to compute the node's result type. Overloads carry no
// evaluation kernels: this layer only computes type metadata.
type Function struct {
	// Index is the overload's location number among all the overloads
	// with the same name.
	Index int

	Args []types.T

	// TypeCheckFn reports whether inputTypes meet the overload's
	// requirement.
	TypeCheckFn func(inputTypes []types.T, requiredTypes []types.T) (match bool)

	// Infer computes the result type from the operand types.
	Infer func(args []types.Type) (types.Type, error)

	// Info records information about the overload used to print.
	Info string
}

// TypeCheck returns true if input arguments meet the overload's type
// requirement.
func (f Function) TypeCheck(args []types.T) bool {
	return f.TypeCheckFn(args, f.Args)
}

// ReturnType resolves the overload's result type for the given operand
// types.
func (f Function) ReturnType(args []types.Type) (types.Type, error) {
	if f.Infer == nil {
		return types.Type{}, moerr.NewInvalidFunctionDefinition("overload has no type inference")
	}
	return f.Infer(args)
}

// functionRegister records every registered operator overload, keyed
// by name. It is filled during init and read-only afterwards.
var functionRegister = map[string][]Function{}

var registerMutex sync.RWMutex

// GetFunctionByName looks up a function by name and argument kinds.
// Exactly one overload must match.
func GetFunctionByName(name string, args []types.T) (Function, error) {
	registerMutex.RLock()
	fs, ok := functionRegister[name]
	registerMutex.RUnlock()
	if !ok {
		return emptyFunction, moerr.NewUndefinedFunction(name, args)
	}

	matches := make([]Function, 0, 2)
	for _, f := range fs {
		if f.TypeCheck(args) {
			matches = append(matches, f)
		}
	}
	if len(matches) == 0 {
		return emptyFunction, moerr.NewUndefinedFunction(name, args)
	}
	if len(matches) > 1 {
		errMessage := fmt.Sprintf("%s%v matches %d overloads", name, args, len(matches))
		return emptyFunction, moerr.NewAmbiguousFunction(errMessage)
	}
	return matches[0], nil
}

// appendFunction is only used at init time to add a new overload into
// the supported-function list. Ensure that no duplicate overloads will
// be added.
func appendFunction(name string, newFunction Function) error {
	if err := completenessCheck(newFunction, name); err != nil {
		return err
	}

	registerMutex.Lock()
	defer registerMutex.Unlock()

	fs := functionRegister[name]
	if newFunction.Index != len(fs) {
		return moerr.NewInvalidFunctionDefinition("function %s(%v)'s index number is wrong", name, newFunction.Args)
	}
	for _, f := range fs {
		if typesEqual(f.Args, newFunction.Args) {
			return moerr.NewDuplicateFunction(name, f.Args)
		}
	}

	functionRegister[name] = append(fs, newFunction)
	return nil
}

func completenessCheck(f Function, name string) error {
	if f.Infer == nil {
		return moerr.NewInvalidFunctionDefinition("function '%s' missing its type inference", name)
	}
	if f.TypeCheckFn == nil {
		return moerr.NewInvalidFunctionDefinition("function '%s' missing its type check function", name)
	}
	return nil
}

func typesEqual(t1, t2 []types.T) bool {
	if len(t1) != len(t2) {
		return false
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			return false
		}
	}
	return true
}
