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
	"strings"

	"github.com/evmkit/ethabi/crypto"
)

// SelectorLength is the length of a function selector, the leading bytes of
// call data identifying the invoked function.
const SelectorLength = 4

// Function binds a parsed signature to its 4 byte selector and exposes call
// encoding and result decoding over the input and output type lists. A
// Function is immutable after construction and safe for concurrent use.
type Function struct {
	Name    string
	Inputs  []Type
	Outputs []Type

	sig      string
	selector [SelectorLength]byte
}

// NewFunction constructs a function descriptor from its parts. The canonical
// signature and selector are computed eagerly.
func NewFunction(name string, inputs, outputs []Type) *Function {
	f := &Function{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		sig:     canonicalSig(name, inputs),
	}
	copy(f.selector[:], crypto.Keccak256([]byte(f.sig))[:SelectorLength])
	return f
}

// ParseFunction parses a textual signature, e.g.
//
//	transfer(address,uint256) returns (bool)
//
// into a function descriptor. The 'function' and 'returns' keywords, argument
// names and whitespace are tolerated and discarded.
func ParseFunction(signature string) (*Function, error) {
	name, inputs, outputs, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return NewFunction(name, inputs, outputs), nil
}

// MustParseFunction is like ParseFunction but panics on a malformed
// signature. Use for signatures known at compile time.
func MustParseFunction(signature string) *Function {
	f, err := ParseFunction(signature)
	if err != nil {
		panic(err)
	}
	return f
}

// Sig returns the canonical signature the selector is derived from, e.g.
// "transfer(address,uint256)". Output types never contribute.
func (f *Function) Sig() string {
	return f.sig
}

// Selector returns the first 4 bytes of the Keccak256 hash of the canonical
// signature.
func (f *Function) Selector() [SelectorLength]byte {
	return f.selector
}

// String implements fmt.Stringer.
func (f *Function) String() string {
	if len(f.Outputs) == 0 {
		return fmt.Sprintf("function %s", f.sig)
	}
	outs := make([]string, len(f.Outputs))
	for i, t := range f.Outputs {
		outs[i] = t.String()
	}
	return fmt.Sprintf("function %s returns(%s)", f.sig, strings.Join(outs, ","))
}

// EncodeCall encodes the arguments against the input types and prepends the
// selector, producing complete call data.
func (f *Function) EncodeCall(args ...interface{}) ([]byte, error) {
	return EncodeWithPrefix(f.selector[:], f.Inputs, args)
}

// DecodeCall verifies that data starts with the function's selector and
// decodes the remaining argument payload.
func (f *Function) DecodeCall(data []byte) ([]interface{}, error) {
	if len(data) < SelectorLength {
		return nil, codecErr("call data too short (%d bytes) for selector", len(data))
	}
	if !bytes.Equal(data[:SelectorLength], f.selector[:]) {
		return nil, codecErr("selector mismatch: got %x, want %x", data[:SelectorLength], f.selector)
	}
	return DecodeWithPrefix(SelectorLength, f.Inputs, data)
}

// EncodeArgs encodes the arguments without the selector prefix.
func (f *Function) EncodeArgs(args ...interface{}) ([]byte, error) {
	return Encode(f.Inputs, args)
}

// DecodeArgs decodes an argument payload without the selector prefix.
func (f *Function) DecodeArgs(data []byte) ([]interface{}, error) {
	return Decode(f.Inputs, data)
}

// EncodeResult encodes values against the output types, the shape of a call
// return payload.
func (f *Function) EncodeResult(values ...interface{}) ([]byte, error) {
	return Encode(f.Outputs, values)
}

// DecodeResult decodes a call return payload against the output types.
func (f *Function) DecodeResult(data []byte) ([]interface{}, error) {
	return Decode(f.Outputs, data)
}

// canonicalSig renders name(type1,type2,...) with canonical type spellings
// and no whitespace, the exact preimage of selector and topic hashes.
func canonicalSig(name string, types []Type) string {
	kinds := make([]string, len(types))
	for i, t := range types {
		kinds[i] = t.String()
	}
	return name + "(" + strings.Join(kinds, ",") + ")"
}
