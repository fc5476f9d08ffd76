// Copyright 2024 The ethabi Authors
// This file is part of the ethabi library.
//
// The ethabi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ethabi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ethabi library. If not, see <http://www.gnu.org/licenses/>.

package abi

import "fmt"

// CodecError is the single error kind returned for every encode, decode and
// packed-encode failure: range violations, length or arity mismatches,
// malformed or truncated input, out-of-bounds offsets, exceeded recursion
// depth and unsupported packed types. Match with errors.As.
type CodecError struct {
	msg string
}

func (e *CodecError) Error() string { return e.msg }

// codecErr builds a *CodecError with a formatted, human-readable cause.
func codecErr(format string, args ...interface{}) *CodecError {
	return &CodecError{msg: "abi: " + fmt.Sprintf(format, args...)}
}

// ParseError is returned for signature grammar failures. It is deliberately a
// distinct kind from CodecError: a malformed signature is caught before any
// codec operation runs.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErr(format string, args ...interface{}) *ParseError {
	return &ParseError{msg: "abi: " + fmt.Sprintf(format, args...)}
}

// Errors for improperly encoded fixed-width words encountered during decode.
var (
	errBadBool   = &CodecError{msg: "abi: improperly encoded boolean value"}
	errBadUint8  = &CodecError{msg: "abi: improperly encoded uint8 value"}
	errBadUint16 = &CodecError{msg: "abi: improperly encoded uint16 value"}
	errBadUint32 = &CodecError{msg: "abi: improperly encoded uint32 value"}
	errBadUint64 = &CodecError{msg: "abi: improperly encoded uint64 value"}
	errBadInt8   = &CodecError{msg: "abi: improperly encoded int8 value"}
	errBadInt16  = &CodecError{msg: "abi: improperly encoded int16 value"}
	errBadInt32  = &CodecError{msg: "abi: improperly encoded int32 value"}
	errBadInt64  = &CodecError{msg: "abi: improperly encoded int64 value"}
)

// typeErr returns a formatted type mismatch error.
func typeErr(t Type, got interface{}) *CodecError {
	return codecErr("cannot use %T as type %v as argument", got, t)
}
