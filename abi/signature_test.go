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
	"errors"
	"testing"
)

func TestParseSignature(t *testing.T) {
	for _, tt := range []struct {
		sig     string
		name    string
		inputs  []string
		outputs []string
	}{
		{"noargs()", "noargs", []string{}, nil},
		{"transfer(address,uint256)", "transfer", []string{"address", "uint256"}, nil},
		{"balanceOf(address) returns (uint256)", "balanceOf", []string{"address"}, []string{"uint256"}},
		{"function balanceOf(address owner) returns (uint256 balance)", "balanceOf", []string{"address"}, []string{"uint256"}},
		// bare output list without the returns keyword
		{"get() (uint256)", "get", []string{}, []string{"uint256"}},
		// aliases canonicalize
		{"f(uint,int)", "f", []string{"uint256", "int256"}, nil},
		// whitespace everywhere
		{"  function  swap (  uint256 a ,  bytes32  ) returns ( bool ) ", "swap", []string{"uint256", "bytes32"}, []string{"bool"}},
		// stacked array suffixes bind innermost first
		{"g(uint32[2][])", "g", []string{"uint32[2][]"}, nil},
		// tuples, nested and arrayed
		{"h((uint256,bytes32)[],string)", "h", []string{"(uint256,bytes32)[]", "string"}, nil},
		{"i(((uint8,bool),address))", "i", []string{"((uint8,bool),address)"}, nil},
		// a function literally named 'function'
		{"function(uint8)", "function", []string{"uint8"}, nil},
	} {
		name, inputs, outputs, err := ParseSignature(tt.sig)
		if err != nil {
			t.Errorf("ParseSignature(%q): %v", tt.sig, err)
			continue
		}
		if name != tt.name {
			t.Errorf("%q: name = %q, want %q", tt.sig, name, tt.name)
		}
		if len(inputs) != len(tt.inputs) {
			t.Errorf("%q: got %d inputs, want %d", tt.sig, len(inputs), len(tt.inputs))
			continue
		}
		for i := range inputs {
			if inputs[i].String() != tt.inputs[i] {
				t.Errorf("%q: input %d = %q, want %q", tt.sig, i, inputs[i], tt.inputs[i])
			}
		}
		if len(outputs) != len(tt.outputs) {
			t.Errorf("%q: got %d outputs, want %d", tt.sig, len(outputs), len(tt.outputs))
			continue
		}
		for i := range outputs {
			if outputs[i].String() != tt.outputs[i] {
				t.Errorf("%q: output %d = %q, want %q", tt.sig, i, outputs[i], tt.outputs[i])
			}
		}
	}
}

func TestParseSignatureInvalid(t *testing.T) {
	for _, sig := range []string{
		"",
		"   ",
		"()",
		"(uint256)",
		"foo",
		"foo(",
		"foo)",
		"foo(uint256",
		"foo(uint256))",
		"foo(uint256) trailing",
		"foo(uint256) returns",
		"foo(uint256) returns bool",
		"foo(uint256,)",
		"foo(,uint256)",
		"foo(uint256)(bool) extra",
		"42foo(uint256)",
	} {
		_, _, _, err := ParseSignature(sig)
		if err == nil {
			t.Errorf("ParseSignature(%q): expected error", sig)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseSignature(%q): error %v is not a *ParseError", sig, err)
		}
	}
}

func TestParseEventDef(t *testing.T) {
	name, inputs, anonymous, err := parseEventDef("Transfer(address indexed from, address indexed to, uint256 value)")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Transfer" || anonymous {
		t.Fatalf("name = %q, anonymous = %v", name, anonymous)
	}
	want := []struct {
		typ     string
		indexed bool
		name    string
	}{
		{"address", true, "from"},
		{"address", true, "to"},
		{"uint256", false, "value"},
	}
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs, want %d", len(inputs), len(want))
	}
	for i, w := range want {
		if inputs[i].Type.String() != w.typ || inputs[i].Indexed != w.indexed || inputs[i].Name != w.name {
			t.Errorf("input %d = {%v %v %q}, want {%v %v %q}",
				i, inputs[i].Type, inputs[i].Indexed, inputs[i].Name, w.typ, w.indexed, w.name)
		}
	}
}

func TestParseEventDefForms(t *testing.T) {
	// event keyword, missing names, anonymous suffix
	name, inputs, anonymous, err := parseEventDef("event Ping(bytes32 indexed, string) anonymous")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Ping" || !anonymous {
		t.Fatalf("name = %q, anonymous = %v", name, anonymous)
	}
	if !inputs[0].Indexed || inputs[0].Name != "" {
		t.Fatalf("input 0 = %+v", inputs[0])
	}
	if inputs[1].Indexed {
		t.Fatalf("input 1 = %+v", inputs[1])
	}

	if _, _, _, err := parseEventDef("Bad(uint256 indexed a b)"); err == nil {
		t.Fatal("expected error for double name")
	}
	if _, _, _, err := parseEventDef("Bad(uint256) anon"); err == nil {
		t.Fatal("expected error for unknown suffix")
	}
}
