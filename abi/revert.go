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

import (
	"bytes"
	"fmt"
	"math/big"
)

// Solidity encodes revert reasons as calls to these two builtin signatures.
var (
	revertFunc = MustParseFunction("Error(string)")
	panicFunc  = MustParseFunction("Panic(uint256)")
)

// panicReasons maps the well-known panic codes to readable strings, see
// https://docs.soliditylang.org/en/latest/control-structures.html#panic-via-assert-and-error-via-require
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// UnpackRevert resolves an abi-encoded revert reason. Reverting contracts
// return data encoded as if calling `Error(string)` or `Panic(uint256)`;
// anything else is rejected.
func UnpackRevert(data []byte) (string, error) {
	if len(data) < SelectorLength {
		return "", codecErr("invalid data for unpacking")
	}
	switch {
	case bytes.HasPrefix(data, selectorOf(revertFunc)):
		values, err := revertFunc.DecodeCall(data)
		if err != nil {
			return "", err
		}
		return values[0].(string), nil
	case bytes.HasPrefix(data, selectorOf(panicFunc)):
		values, err := panicFunc.DecodeCall(data)
		if err != nil {
			return "", err
		}
		code := values[0].(*big.Int)
		if code.IsUint64() {
			if reason, ok := panicReasons[code.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", code), nil
	default:
		return "", codecErr("invalid data for unpacking")
	}
}

func selectorOf(f *Function) []byte {
	sel := f.Selector()
	return sel[:]
}
