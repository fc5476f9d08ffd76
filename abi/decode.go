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
	stdmath "math"
	"math/big"

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/common/math"
)

// maxDecodeDepth bounds the recursion when decoding. Decoded data comes from
// untrusted chain responses and logs, so the limit is enforced explicitly
// instead of leaning on the host call stack, whatever the data's declared
// lengths say.
const maxDecodeDepth = 16

// Decode deserializes the standard ABI wire format against the ordered type
// list and returns one decoded value per type. Integer values are returned at
// their natural Go width up to 64 bits and as *big.Int above; composite
// values are returned as []interface{}.
func Decode(types []Type, data []byte) ([]interface{}, error) {
	if len(data) == 0 {
		if len(types) != 0 {
			return nil, codecErr("attempting to unmarshal an empty string while arguments are expected")
		}
		return []interface{}{}, nil
	}
	return decodeItems(types, data, 0)
}

// DecodeWithPrefix skips prefixLen leading bytes (the call data selector) and
// decodes the remainder.
func DecodeWithPrefix(prefixLen int, types []Type, data []byte) ([]interface{}, error) {
	if len(data) < prefixLen {
		return nil, codecErr("data too short (%d bytes) for %d byte prefix", len(data), prefixLen)
	}
	return Decode(types, data[prefixLen:])
}

// decodeItems mirrors encodeItems: read one head word per item, decode static
// items in place and follow offsets for dynamic ones. Static composites
// occupy multiple head slots, tracked as virtual arguments.
func decodeItems(types []Type, data []byte, depth int) ([]interface{}, error) {
	retval := make([]interface{}, 0, len(types))
	virtualArgs := 0
	for index, t := range types {
		value, err := decodeValue(t, data, (index+virtualArgs)*32, depth)
		if err != nil {
			return nil, err
		}
		if (t.T == ArrayTy || t.T == TupleTy) && !t.dynamic {
			// Static composites are encoded inline, e.g. [3]uint256 takes the
			// room of three plain words. Account for the extra head slots.
			virtualArgs += t.staticSize/32 - 1
		}
		retval = append(retval, value)
	}
	return retval, nil
}

// decodeValue decodes the value of type t whose head slot sits at index.
func decodeValue(t Type, data []byte, index, depth int) (interface{}, error) {
	if depth >= maxDecodeDepth {
		return nil, codecErr("exceeded maximum decode depth of %d", maxDecodeDepth)
	}
	if index+32 > len(data) {
		return nil, codecErr("cannot unmarshal: length insufficient %d require %d", len(data), index+32)
	}
	switch t.T {
	case SliceTy:
		begin, length, err := lengthPrefixPointsTo(index, data)
		if err != nil {
			return nil, err
		}
		return decodeSeq(t, data[begin:], length, depth)
	case ArrayTy:
		if t.Elem.dynamic {
			offset, err := readOffset(index, data)
			if err != nil {
				return nil, err
			}
			return decodeSeq(t, data[offset:], t.Size, depth)
		}
		return decodeSeq(t, data[index:], t.Size, depth)
	case TupleTy:
		if t.dynamic {
			offset, err := readOffset(index, data)
			if err != nil {
				return nil, err
			}
			return decodeTuple(t, data[offset:], depth)
		}
		return decodeTuple(t, data[index:], depth)
	case StringTy:
		begin, length, err := lengthPrefixPointsTo(index, data)
		if err != nil {
			return nil, err
		}
		return string(data[begin : begin+length]), nil
	case BytesTy:
		begin, length, err := lengthPrefixPointsTo(index, data)
		if err != nil {
			return nil, err
		}
		return common.CopyBytes(data[begin : begin+length]), nil
	case IntTy, UintTy:
		return readInteger(t, data[index:index+32])
	case BoolTy:
		return readBool(data[index : index+32])
	case AddressTy:
		return common.BytesToAddress(data[index : index+32]), nil
	case FixedBytesTy:
		return common.CopyBytes(data[index : index+t.Size]), nil
	default:
		return nil, codecErr("unknown type %v", t.T)
	}
}

// decodeSeq decodes size consecutive elements of t.Elem laid out at the start
// of region. Static elements occupy their full static footprint, dynamic ones
// a 32 byte offset word each.
func decodeSeq(t Type, region []byte, size, depth int) ([]interface{}, error) {
	if size < 0 {
		return nil, codecErr("cannot unmarshal to array, size is negative (%d)", size)
	}
	elemSize := t.Elem.staticSize
	if size*elemSize > len(region) {
		return nil, codecErr("cannot unmarshal array: %d elements of %d bytes exceed region of %d bytes", size, elemSize, len(region))
	}
	ret := make([]interface{}, 0, size)
	for i, j := 0, 0; j < size; i, j = i+elemSize, j+1 {
		v, err := decodeValue(*t.Elem, region, i, depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// decodeTuple decodes the fields of t laid out at the start of region.
func decodeTuple(t Type, region []byte, depth int) ([]interface{}, error) {
	ret := make([]interface{}, 0, len(t.TupleElems))
	virtualArgs := 0
	for index, elem := range t.TupleElems {
		v, err := decodeValue(*elem, region, (index+virtualArgs)*32, depth+1)
		if err != nil {
			return nil, err
		}
		if (elem.T == ArrayTy || elem.T == TupleTy) && !elem.dynamic {
			virtualArgs += elem.staticSize/32 - 1
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// readInteger decodes a 32 byte big-endian word into the Go representation of
// the declared width, interpreting the sign bit for int types.
func readInteger(t Type, word []byte) (interface{}, error) {
	ret := new(big.Int).SetBytes(word)

	if t.T == UintTy {
		u64, isu64 := ret.Uint64(), ret.IsUint64()
		switch t.Size {
		case 8:
			if !isu64 || u64 > stdmath.MaxUint8 {
				return nil, errBadUint8
			}
			return uint8(u64), nil
		case 16:
			if !isu64 || u64 > stdmath.MaxUint16 {
				return nil, errBadUint16
			}
			return uint16(u64), nil
		case 32:
			if !isu64 || u64 > stdmath.MaxUint32 {
				return nil, errBadUint32
			}
			return uint32(u64), nil
		case 64:
			if !isu64 {
				return nil, errBadUint64
			}
			return u64, nil
		default:
			if ret.BitLen() > t.Size {
				return nil, codecErr("improperly encoded uint%d value", t.Size)
			}
			return ret, nil
		}
	}

	// big.SetBytes can't tell if a number is negative or positive in itself.
	// On EVM, a word with bit 255 set holds a negative two's complement value.
	ret = math.S256(ret)
	i64, isi64 := ret.Int64(), ret.IsInt64()
	switch t.Size {
	case 8:
		if !isi64 || i64 < stdmath.MinInt8 || i64 > stdmath.MaxInt8 {
			return nil, errBadInt8
		}
		return int8(i64), nil
	case 16:
		if !isi64 || i64 < stdmath.MinInt16 || i64 > stdmath.MaxInt16 {
			return nil, errBadInt16
		}
		return int16(i64), nil
	case 32:
		if !isi64 || i64 < stdmath.MinInt32 || i64 > stdmath.MaxInt32 {
			return nil, errBadInt32
		}
		return int32(i64), nil
	case 64:
		if !isi64 {
			return nil, errBadInt64
		}
		return i64, nil
	default:
		if err := checkRange(t, ret); err != nil {
			return nil, codecErr("improperly encoded int%d value", t.Size)
		}
		return ret, nil
	}
}

// readBool rejects any word that is not a canonical 0 or 1.
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// lengthPrefixPointsTo reads the offset word at index, bounds-checks it and
// the length word it points at, and returns where the payload begins together
// with the declared length.
func lengthPrefixPointsTo(index int, data []byte) (start int, length int, err error) {
	bigOffsetEnd := new(big.Int).SetBytes(data[index : index+32])
	bigOffsetEnd.Add(bigOffsetEnd, big.NewInt(32))
	outputLength := big.NewInt(int64(len(data)))

	if bigOffsetEnd.Cmp(outputLength) > 0 {
		return 0, 0, codecErr("cannot unmarshal: offset %v would go over slice boundary (len=%v)", bigOffsetEnd, outputLength)
	}
	if bigOffsetEnd.BitLen() > 63 {
		return 0, 0, codecErr("offset larger than int64: %v", bigOffsetEnd)
	}

	offsetEnd := int(bigOffsetEnd.Uint64())
	lengthBig := new(big.Int).SetBytes(data[offsetEnd-32 : offsetEnd])

	totalSize := new(big.Int).Add(bigOffsetEnd, lengthBig)
	if totalSize.BitLen() > 63 {
		return 0, 0, codecErr("length larger than int64: %v", totalSize)
	}
	if totalSize.Cmp(outputLength) > 0 {
		return 0, 0, codecErr("cannot unmarshal: length insufficient %v require %v", outputLength, totalSize)
	}
	return offsetEnd, int(lengthBig.Uint64()), nil
}

// readOffset reads and bounds-checks the offset word at index.
func readOffset(index int, data []byte) (int, error) {
	offset := new(big.Int).SetBytes(data[index : index+32])
	if offset.BitLen() > 63 {
		return 0, codecErr("offset larger than int64: %v", offset)
	}
	if offset.Cmp(big.NewInt(int64(len(data)))) > 0 {
		return 0, codecErr("cannot unmarshal: offset %v would go over slice boundary (len=%d)", offset, len(data))
	}
	return int(offset.Uint64()), nil
}
