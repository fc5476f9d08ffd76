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
	"fmt"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is a descriptor for a single ABI value type. The set of variants is
// closed: elementary types, dynamic slices (T[]), fixed-size arrays (T[N])
// and tuples. The dynamic/static classification and the static footprint are
// computed once at construction, every codec branch dispatches on the T tag.
type Type struct {
	Elem *Type // element type of a slice or array
	Size int   // bit width for intN/uintN, byte count for bytesN, length for T[N]
	T    byte  // our own type tag

	TupleElems []*Type // ordered field types of a tuple

	stringKind string // canonical Solidity spelling, derives signatures
	dynamic    bool
	staticSize int // in-place footprint in bytes; 32 for dynamic types (the offset word)
}

// UintType returns the descriptor for uint<bits>. Bits must be a multiple of
// 8 between 8 and 256.
func UintType(bits int) (Type, error) {
	if err := checkBits(bits); err != nil {
		return Type{}, err
	}
	return newStatic(UintTy, bits, fmt.Sprintf("uint%d", bits)), nil
}

// IntType returns the descriptor for int<bits>.
func IntType(bits int) (Type, error) {
	if err := checkBits(bits); err != nil {
		return Type{}, err
	}
	return newStatic(IntTy, bits, fmt.Sprintf("int%d", bits)), nil
}

// AddressType returns the descriptor for address, a 20 byte value encoded as
// a uint160 word.
func AddressType() Type {
	return newStatic(AddressTy, 20, "address")
}

// BoolType returns the descriptor for bool.
func BoolType() Type {
	return newStatic(BoolTy, 0, "bool")
}

// FixedBytesType returns the descriptor for bytes<n>, 1 <= n <= 32.
func FixedBytesType(n int) (Type, error) {
	if n < 1 || n > 32 {
		return Type{}, parseErr("invalid bytes%d: size must be between 1 and 32", n)
	}
	return newStatic(FixedBytesTy, n, fmt.Sprintf("bytes%d", n)), nil
}

// BytesType returns the descriptor for the dynamic bytes type.
func BytesType() Type {
	return Type{T: BytesTy, stringKind: "bytes", dynamic: true, staticSize: 32}
}

// StringType returns the descriptor for the dynamic UTF-8 string type.
func StringType() Type {
	return Type{T: StringTy, stringKind: "string", dynamic: true, staticSize: 32}
}

// SliceType returns the descriptor for elem[], the dynamic-length array over
// elem. A slice is always dynamic.
func SliceType(elem Type) Type {
	e := elem
	return Type{
		T:          SliceTy,
		Elem:       &e,
		stringKind: elem.stringKind + "[]",
		dynamic:    true,
		staticSize: 32,
	}
}

// ArrayType returns the descriptor for elem[n], the fixed-length array over
// elem. It is dynamic iff elem is dynamic.
func ArrayType(n int, elem Type) (Type, error) {
	if n < 0 {
		return Type{}, parseErr("invalid array length %d", n)
	}
	e := elem
	t := Type{
		T:          ArrayTy,
		Elem:       &e,
		Size:       n,
		stringKind: fmt.Sprintf("%s[%d]", elem.stringKind, n),
	}
	if elem.dynamic {
		t.dynamic = true
		t.staticSize = 32
	} else {
		t.staticSize = n * elem.staticSize
	}
	return t, nil
}

// TupleType returns the descriptor for (f1,f2,...). It is dynamic iff any
// field is dynamic, transitively.
func TupleType(fields ...Type) Type {
	var (
		elems   = make([]*Type, len(fields))
		kinds   = make([]string, len(fields))
		dynamic = false
		size    = 0
	)
	for i := range fields {
		f := fields[i]
		elems[i] = &f
		kinds[i] = f.stringKind
		dynamic = dynamic || f.dynamic
		size += f.staticSize
	}
	t := Type{
		T:          TupleTy,
		TupleElems: elems,
		stringKind: "(" + strings.Join(kinds, ",") + ")",
		dynamic:    dynamic,
		staticSize: size,
	}
	if dynamic {
		t.staticSize = 32
	}
	return t
}

func newStatic(tag byte, size int, kind string) Type {
	return Type{T: tag, Size: size, stringKind: kind, staticSize: 32}
}

func checkBits(bits int) error {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return parseErr("invalid integer width %d: must be a multiple of 8 between 8 and 256", bits)
	}
	return nil
}

// IsDynamic reports whether the encoded form of the type has variable size.
// The following types are called "dynamic":
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func (t Type) IsDynamic() bool {
	return t.dynamic
}

// StaticSize returns the number of bytes the type occupies in-place inside a
// head region. Static types occupy their full encoding (32 bytes per
// elementary word, n*StaticSize(elem) for arrays, the field sum for tuples);
// dynamic types occupy the fixed 32 byte offset word that points at their
// tail.
func (t Type) StaticSize() int {
	return t.staticSize
}

// String returns the canonical Solidity spelling of the type, e.g. uint256,
// bytes32, (uint256,bool)[2]. This exact string feeds the selector and topic
// hashes, and re-parsing it reproduces the type.
func (t Type) String() string {
	return t.stringKind
}
