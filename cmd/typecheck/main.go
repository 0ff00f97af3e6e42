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

// typecheck resolves the result type of an arithmetic expression over
// SQL type names, e.g.
//
//	typecheck INT + DOUBLE
//	typecheck - SMALLINT
//
// A "?" operand stands for a type that is not resolved yet.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coraldb/coral/pkg/common/moerr"
	"github.com/coraldb/coral/pkg/config"
	"github.com/coraldb/coral/pkg/container/types"
	"github.com/coraldb/coral/pkg/logutil"
	"github.com/coraldb/coral/pkg/sql/plan/function"
)

var cfgFile = flag.String("cfg", "", "configuration file")

func main() {
	flag.Parse()

	params := config.NewParameters()
	if *cfgFile != "" {
		if err := config.LoadConfigurationFromFile(*cfgFile, params); err != nil {
			fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
			os.Exit(1)
		}
	}
	logutil.SetupGlobalLogger(&params.Log)

	result, err := resolve(flag.Args())
	if err != nil {
		logutil.Errorf("typecheck failed: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func resolve(args []string) (types.Type, error) {
	switch len(args) {
	case 2:
		// unary: OP TYPE
		typ, err := parseType(args[1])
		if err != nil {
			return types.Type{}, err
		}
		return inferOp(unaryName(args[0]), typ)
	case 3:
		// binary: TYPE OP TYPE
		typ1, err := parseType(args[0])
		if err != nil {
			return types.Type{}, err
		}
		typ2, err := parseType(args[2])
		if err != nil {
			return types.Type{}, err
		}
		return inferOp(args[1], typ1, typ2)
	}
	return types.Type{}, fmt.Errorf("usage: typecheck TYPE OP TYPE | typecheck OP TYPE")
}

func parseType(name string) (types.Type, error) {
	if name == "?" {
		return types.OrAny(nil), nil
	}
	oid, ok := types.FromName(name)
	if !ok {
		return types.Type{}, moerr.NewUnknownType(name)
	}
	return types.New(oid), nil
}

func unaryName(op string) string {
	if op == "-" {
		return function.UnaryMinus
	}
	return op
}

func inferOp(name string, args ...types.Type) (types.Type, error) {
	oids := make([]types.T, len(args))
	for i, a := range args {
		oids[i] = a.Oid
	}
	f, err := function.GetFunctionByName(name, oids)
	if err != nil {
		return types.Type{}, err
	}
	logutil.Debugf("resolved %s overload %d for %v", name, f.Index, oids)
	return f.ReturnType(args)
}
