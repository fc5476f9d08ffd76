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

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/core/types"
	"github.com/evmkit/ethabi/crypto"
)

// EventInput is one declared event parameter: its type, whether the value is
// carried in a log topic rather than the data payload, and an optional name.
type EventInput struct {
	Name    string
	Type    Type
	Indexed bool
}

// Event describes an event potentially raised by the EVM's LOG mechanism.
// Anonymous events don't get the signature hash as the first LOG topic. An
// Event is immutable after construction and safe for concurrent use.
type Event struct {
	Name      string
	Inputs    []EventInput
	Anonymous bool

	sig string
	id  common.Hash
}

// NewEvent constructs an event descriptor from its parts, precomputing the
// canonical signature and topic identifier. Unnamed inputs are assigned
// positional names.
func NewEvent(name string, inputs []EventInput, anonymous bool) *Event {
	kinds := make([]string, len(inputs))
	sanitized := make([]EventInput, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			in.Name = fmt.Sprintf("arg%d", i)
		}
		sanitized[i] = in
		kinds[i] = in.Type.String()
	}
	sig := name + "(" + strings.Join(kinds, ",") + ")"
	return &Event{
		Name:      name,
		Inputs:    sanitized,
		Anonymous: anonymous,
		sig:       sig,
		id:        crypto.Keccak256Hash([]byte(sig)),
	}
}

// ParseEvent parses a textual event signature, e.g.
//
//	Transfer(address indexed from, address indexed to, uint256 value)
//
// The 'event' keyword, argument names and whitespace are tolerated and
// discarded; a trailing 'anonymous' marks the event anonymous.
func ParseEvent(signature string) (*Event, error) {
	name, inputs, anonymous, err := parseEventDef(signature)
	if err != nil {
		return nil, err
	}
	return NewEvent(name, inputs, anonymous), nil
}

// MustParseEvent is like ParseEvent but panics on a malformed signature.
func MustParseEvent(signature string) *Event {
	e, err := ParseEvent(signature)
	if err != nil {
		panic(err)
	}
	return e
}

// Sig returns the canonical signature the topic identifier is derived from.
// Indexed markers never contribute.
func (e *Event) Sig() string {
	return e.sig
}

// ID returns the full 32 byte Keccak256 hash of the canonical signature, the
// first log topic of non-anonymous events.
func (e *Event) ID() common.Hash {
	return e.id
}

// String implements fmt.Stringer.
func (e *Event) String() string {
	params := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		if in.Indexed {
			params[i] = fmt.Sprintf("%v indexed %v", in.Type, in.Name)
		} else {
			params[i] = fmt.Sprintf("%v %v", in.Type, in.Name)
		}
	}
	return fmt.Sprintf("event %v(%v)", e.Name, strings.Join(params, ", "))
}

// indexed returns how many of the event's inputs are indexed.
func (e *Event) indexed() int {
	n := 0
	for _, in := range e.Inputs {
		if in.Indexed {
			n++
		}
	}
	return n
}

// isValueType reports whether an indexed field of type t stores the value
// itself in its topic. Any other type stores only the Keccak256 hash of the
// value's encoding, which cannot be reversed.
func isValueType(t Type) bool {
	switch t.T {
	case AddressTy, FixedBytesTy, IntTy, UintTy, BoolTy:
		return true
	default:
		return false
	}
}

// DecodeLog decodes a log against the event shape, returning one value per
// declared input in declaration order. Indexed value-type fields are decoded
// from their topics; indexed dynamic or composite fields are irreversible and
// yield the raw 32 byte topic as a common.Hash. Non-indexed fields are
// decoded from the data payload.
//
// A log that does not match the event shape (wrong topic count, wrong
// signature topic, missing data) yields (nil, nil) rather than an error, so
// callers can probe several candidate events against one log. Corrupt data
// payloads still return a *CodecError.
func (e *Event) DecodeLog(log *types.Log) ([]interface{}, error) {
	sigTopics := 1
	if e.Anonymous {
		sigTopics = 0
	}
	if len(log.Topics) != e.indexed()+sigTopics {
		return nil, nil
	}
	if !e.Anonymous && log.Topics[0] != e.id {
		return nil, nil
	}

	dataTypes := make([]Type, 0, len(e.Inputs))
	for _, in := range e.Inputs {
		if !in.Indexed {
			dataTypes = append(dataTypes, in.Type)
		}
	}
	if len(dataTypes) > 0 && len(log.Data) == 0 {
		return nil, nil
	}
	dataValues, err := Decode(dataTypes, log.Data)
	if err != nil {
		return nil, err
	}

	// interleave topic and data values back into declaration order
	values := make([]interface{}, len(e.Inputs))
	topicIdx, dataIdx := sigTopics, 0
	for i, in := range e.Inputs {
		if !in.Indexed {
			values[i] = dataValues[dataIdx]
			dataIdx++
			continue
		}
		topic := log.Topics[topicIdx]
		topicIdx++
		if !isValueType(in.Type) {
			values[i] = topic
			continue
		}
		v, err := decodeValue(in.Type, topic[:], 0, 0)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// EncodeTopics builds the log topic list for a filter query: the signature
// topic for non-anonymous events followed by one topic per indexed field. A
// nil argument leaves a zero wildcard topic in its slot. Value types are
// encoded into the topic word directly; strings, bytes and composite types
// store the Keccak256 hash of their encoding.
func (e *Event) EncodeTopics(args ...interface{}) ([]common.Hash, error) {
	if len(args) != e.indexed() {
		return nil, codecErr("topic argument count mismatch: got %d for %d indexed fields", len(args), e.indexed())
	}
	var topics []common.Hash
	if !e.Anonymous {
		topics = append(topics, e.id)
	}
	argIdx := 0
	for _, in := range e.Inputs {
		if !in.Indexed {
			continue
		}
		arg := args[argIdx]
		argIdx++
		if arg == nil {
			topics = append(topics, common.Hash{})
			continue
		}
		topic, err := encodeTopicValue(in.Type, arg)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

func encodeTopicValue(t Type, v interface{}) (common.Hash, error) {
	if isValueType(t) {
		word, err := packElement(t, v)
		if err != nil {
			return common.Hash{}, err
		}
		return common.BytesToHash(word), nil
	}
	enc, err := hashPreimage(t, v)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

// hashPreimage renders the in-place encoding Solidity hashes for non-value
// indexed parameters: raw bytes for string/bytes, and the concatenation of
// the elements' in-place encodings, without length or offset words, for
// arrays and tuples.
func hashPreimage(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(t, v)
		}
		if err := checkUTF8(s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	case BytesTy:
		b, ok := toByteSlice(v)
		if !ok {
			return nil, typeErr(t, v)
		}
		return b, nil
	case SliceTy, ArrayTy:
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		if t.T == ArrayTy && len(elems) != t.Size {
			return nil, codecErr("array length mismatch: got %d for %v", len(elems), t)
		}
		var ret []byte
		for _, e := range elems {
			enc, err := hashPreimage(*t.Elem, e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, enc...)
		}
		return ret, nil
	case TupleTy:
		elems, err := valueList(t, v)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(t.TupleElems) {
			return nil, codecErr("tuple arity mismatch: got %d for %v", len(elems), t)
		}
		var ret []byte
		for i, e := range elems {
			enc, err := hashPreimage(*t.TupleElems[i], e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, enc...)
		}
		return ret, nil
	default:
		return packElement(t, v)
	}
}
