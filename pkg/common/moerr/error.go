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

package moerr

import "fmt"

const MySQLDefaultSqlState = "HY000"

// MySQL error codes surfaced to clients.
const (
	ER_UNKNOWN_ERROR     uint16 = 1105
	ER_SP_DOES_NOT_EXIST uint16 = 1305
	ER_INVALID_USE       uint16 = 1210
	ER_UNKNOWN_DATA_TYPE uint16 = 1064
)

const (
	// Ok is not an error.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102

	// Group 2: numeric and type inference
	ErrNotNumeric  uint16 = 20200
	ErrUnknownType uint16 = 20201

	// Group 3: function registry
	ErrUndefinedFunction         uint16 = 20300
	ErrDuplicateFunction         uint16 = 20301
	ErrInvalidFunctionDefinition uint16 = 20302
	ErrAmbiguousFunction         uint16 = 20303

	// ErrEnd, the max value of the error code space.
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	mysqlCode        uint16
	sqlStates        []string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	ErrInternal: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "internal error: %s"},
	ErrNYI:      {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "%s is not yet implemented"},

	ErrNotNumeric:  {ER_INVALID_USE, []string{MySQLDefaultSqlState}, "operand %d is not numeric"},
	ErrUnknownType: {ER_UNKNOWN_DATA_TYPE, []string{MySQLDefaultSqlState}, "unknown type '%s'"},

	ErrUndefinedFunction:         {ER_SP_DOES_NOT_EXIST, []string{MySQLDefaultSqlState}, "undefined function %s%v"},
	ErrDuplicateFunction:         {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "duplicate function %s%v"},
	ErrInvalidFunctionDefinition: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "invalid function definition: %s"},
	ErrAmbiguousFunction:         {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "ambiguous function call: %s"},

	ErrEnd: {ER_UNKNOWN_ERROR, []string{MySQLDefaultSqlState}, "internal error: end of error code space"},
}

func newError(code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("missing error code: %d", code))
	}
	var msg string
	if len(args) == 0 {
		msg = item.errorMsgOrFormat
	} else {
		msg = fmt.Sprintf(item.errorMsgOrFormat, args...)
	}
	return &Error{
		code:      code,
		mysqlCode: item.mysqlCode,
		message:   msg,
		sqlState:  item.sqlStates[0],
	}
}

// Error is the single error type surfaced by this module. It carries
// an internal code, the MySQL code and SQL state a frontend would send
// to a client, and the rendered message.
type Error struct {
	code      uint16
	mysqlCode uint16
	message   string
	sqlState  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) MySQLCode() uint16 {
	return e.mysqlCode
}

func (e *Error) SqlState() string {
	return e.sqlState
}

// IsMoErrCode reports whether e is a moerr with the given code.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	me, ok := e.(*Error)
	if !ok {
		return false
	}
	return me.code == rc
}

func NewInternalError(msg string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(msg, args...))
}

func NewNYI(msg string, args ...any) *Error {
	return newError(ErrNYI, fmt.Sprintf(msg, args...))
}

// NewNotNumeric reports a non-numeric operand of a numeric operator.
// operand is 1-based.
func NewNotNumeric(operand int) *Error {
	return newError(ErrNotNumeric, operand)
}

func NewUnknownType(name string) *Error {
	return newError(ErrUnknownType, name)
}

func NewUndefinedFunction(name string, args any) *Error {
	return newError(ErrUndefinedFunction, name, args)
}

func NewDuplicateFunction(name string, args any) *Error {
	return newError(ErrDuplicateFunction, name, args)
}

func NewInvalidFunctionDefinition(msg string, args ...any) *Error {
	return newError(ErrInvalidFunctionDefinition, fmt.Sprintf(msg, args...))
}

func NewAmbiguousFunction(msg string) *Error {
	return newError(ErrAmbiguousFunction, msg)
}
