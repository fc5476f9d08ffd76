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
	"math/big"

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/common/math"
)

// EncodePacked implements Solidity's abi.encodePacked: a flat, offset-free
// concatenation. Top-level elementary values take their minimal byte width.
// Values one level inside an array take the standard 32 byte word form
// instead; Solidity pads array elements to word width even in packed mode.
// Tuples, and arrays over dynamic element types, are unsupported.
func EncodePacked(types []Type, values []interface{}) ([]byte, error) {
	if len(values) != len(types) {
		return nil, codecErr("argument count mismatch: got %d for %d", len(values), len(types))
	}
	var ret []byte
	for i, t := range types {
		enc, err := encodePackedValue(t, values[i])
		if err != nil {
			return nil, err
		}
		ret = append(ret, enc...)
	}
	return ret, nil
}

func encodePackedValue(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case TupleTy:
		return nil, codecErr("tuple type %v is not supported in packed mode", t)
	case SliceTy, ArrayTy:
		switch t.Elem.T {
		case TupleTy, SliceTy, ArrayTy, StringTy, BytesTy:
			return nil, codecErr("element type %v is not supported in packed mode", t.Elem)
		}
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		if t.T == ArrayTy && len(elems) != t.Size {
			return nil, codecErr("array length mismatch: got %d for %v", len(elems), t)
		}
		var ret []byte
		for _, e := range elems {
			word, err := packElement(*t.Elem, e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, word...)
		}
		return ret, nil
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(t, v)
		}
		if _, err := utf8Length(s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	case BytesTy:
		b, ok := toByteSlice(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		return common.CopyBytes(b), nil
	case IntTy, UintTy:
		n, ok := toBigInt(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		if err := checkRange(t, n); err != nil {
			return nil, err
		}
		// two's complement truncation to the declared width
		word := math.U256Bytes(new(big.Int).Set(n))
		return word[32-t.Size/8:], nil
	case BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(t, v)
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case AddressTy:
		a, ok := toAddress(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		return a.Bytes(), nil
	case FixedBytesTy:
		b, ok := toByteSlice(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		if len(b) != t.Size {
			return nil, codecErr("invalid value length %d for %v", len(b), t)
		}
		return common.CopyBytes(b), nil
	default:
		return nil, codecErr("could not pack element, unknown type: %v", t.T)
	}
}
