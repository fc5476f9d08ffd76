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
	"reflect"

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/common/math"
	"github.com/holiman/uint256"
)

// Encode serializes the values against the ordered type list into the
// standard ABI wire format. The value and type lists must have equal length.
func Encode(types []Type, values []interface{}) ([]byte, error) {
	if len(values) != len(types) {
		return nil, codecErr("argument count mismatch: got %d for %d", len(values), len(types))
	}
	return encodeItems(types, values)
}

// EncodeWithPrefix encodes like Encode and prepends prefix verbatim. Call
// data is built this way, with the 4 byte selector as the prefix.
func EncodeWithPrefix(prefix []byte, types []Type, values []interface{}) ([]byte, error) {
	enc, err := Encode(types, values)
	if err != nil {
		return nil, err
	}
	return append(common.CopyBytes(prefix), enc...), nil
}

// encodeItems runs the head/tail scheme over one tuple-like boundary: the
// top-level argument list, a tuple's fields and an array's elements are all
// encoded by this same procedure.
//
// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
// where for a static type head(X(i)) = enc(X(i)) and the tail is empty, and
// for a dynamic type the head holds the byte offset of enc(X(i)) within the
// region and the tail holds enc(X(i)) itself.
func encodeItems(types []Type, values []interface{}) ([]byte, error) {
	// Tail offsets start past the space the heads occupy.
	offset := 0
	for _, t := range types {
		offset += t.staticSize
	}
	var head, tail []byte
	for i, t := range types {
		enc, err := encodeValue(t, values[i])
		if err != nil {
			return nil, err
		}
		if t.dynamic {
			head = append(head, encodeOffset(offset)...)
			offset += len(enc)
			tail = append(tail, enc...)
		} else {
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// encodeValue produces the full standalone encoding of a single value.
func encodeValue(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case SliceTy:
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		// dynamic arrays carry their length word before the element region
		ret := encodeOffset(len(elems))
		body, err := encodeElems(*t.Elem, elems)
		if err != nil {
			return nil, err
		}
		return append(ret, body...), nil
	case ArrayTy:
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		if len(elems) != t.Size {
			return nil, codecErr("array length mismatch: got %d for %v", len(elems), t)
		}
		return encodeElems(*t.Elem, elems)
	case TupleTy:
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(t.TupleElems) {
			return nil, codecErr("tuple arity mismatch: got %d for %v", len(elems), t)
		}
		fields := make([]Type, len(t.TupleElems))
		for i, e := range t.TupleElems {
			fields[i] = *e
		}
		return encodeItems(fields, elems)
	default:
		return packElement(t, v)
	}
}

func encodeElems(elem Type, values []interface{}) ([]byte, error) {
	types := make([]Type, len(values))
	for i := range types {
		types[i] = elem
	}
	return encodeItems(types, values)
}

// packElement encodes a single elementary value into its standard 32 byte
// aligned form.
func packElement(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		n, ok := toBigInt(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		if err := checkRange(t, n); err != nil {
			return nil, err
		}
		return math.U256Bytes(new(big.Int).Set(n)), nil
	case BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(t, v)
		}
		word := make([]byte, 32)
		if b {
			word[31] = 1
		}
		return word, nil
	case AddressTy:
		a, ok := toAddress(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		return common.LeftPadBytes(a[:], 32), nil
	case FixedBytesTy:
		b, ok := toByteSlice(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		if len(b) != t.Size {
			return nil, codecErr("invalid value length %d for %v", len(b), t)
		}
		return common.RightPadBytes(b, 32), nil
	case BytesTy:
		b, ok := toByteSlice(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		return packBytesSlice(b), nil
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(t, v)
		}
		if err := checkUTF8(s); err != nil {
			return nil, err
		}
		return packBytesSlice([]byte(s)), nil
	default:
		return nil, codecErr("could not pack element, unknown type: %v", t.T)
	}
}

// packBytesSlice packs the given bytes as [L, V] with V right-padded to the
// next 32 byte boundary.
func packBytesSlice(b []byte) []byte {
	ret := encodeOffset(len(b))
	return append(ret, common.RightPadBytes(b, (len(b)+31)/32*32)...)
}

// encodeOffset encodes a non-negative offset or length as a 32 byte word.
func encodeOffset(n int) []byte {
	return math.U256Bytes(new(big.Int).SetInt64(int64(n)))
}

// checkRange validates that n fits the declared bit width of t.
func checkRange(t Type, n *big.Int) error {
	if t.T == UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return codecErr("value %v is out of range for %v", n, t)
		}
		return nil
	}
	// int: -2^(bits-1) <= n < 2^(bits-1)
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Cmp(new(big.Int).Neg(limit)) < 0 || n.Cmp(limit) >= 0 {
		return codecErr("value %v is out of range for %v", n, t)
	}
	return nil
}

// toBigInt normalizes the supported integer value kinds to a big.Int.
func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, true
	case *uint256.Int:
		return n.ToBig(), true
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	default:
		return nil, false
	}
}

func toAddress(v interface{}) (common.Address, bool) {
	switch a := v.(type) {
	case common.Address:
		return a, true
	case *common.Address:
		return *a, true
	case [common.AddressLength]byte:
		return common.Address(a), true
	case []byte:
		if len(a) == common.AddressLength {
			return common.BytesToAddress(a), true
		}
	}
	return common.Address{}, false
}

// toByteSlice accepts []byte directly and flattens byte arrays of any length
// through reflection, so [4]byte and friends work without copying by hand.
func toByteSlice(v interface{}) ([]byte, bool) {
	if b, ok := v.([]byte); ok {
		return b, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, true
	}
	return nil, false
}

// valueList normalizes a composite value into its element list. A plain
// []interface{} passes through, any other slice or array kind is unrolled
// through reflection.
func valueList(t Type, v interface{}) ([]interface{}, error) {
	if elems, ok := v.([]interface{}); ok {
		return elems, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, typeErr(t, v)
	}
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}
