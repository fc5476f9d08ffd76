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
	"math/big"
	"testing"

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/crypto"
)

func TestFunctionSelector(t *testing.T) {
	for _, tt := range []struct {
		signature string
		sig       string
		selector  string
	}{
		{"transfer(address,uint256)", "transfer(address,uint256)", "a9059cbb"},
		{"balanceOf(address)", "balanceOf(address)", "70a08231"},
		{"oracle()", "oracle()", "7dc0d1d0"},
		// aliases and decorations never reach the hash preimage
		{"function transfer(address to, uint256 amount) returns (bool)", "transfer(address,uint256)", "a9059cbb"},
		{"balanceOf(address owner) returns (uint256)", "balanceOf(address)", "70a08231"},
	} {
		fn, err := ParseFunction(tt.signature)
		if err != nil {
			t.Errorf("%q: %v", tt.signature, err)
			continue
		}
		if fn.Sig() != tt.sig {
			t.Errorf("%q: Sig() = %q, want %q", tt.signature, fn.Sig(), tt.sig)
		}
		sel := fn.Selector()
		if common.Bytes2Hex(sel[:]) != tt.selector {
			t.Errorf("%q: selector %x, want %s", tt.signature, sel, tt.selector)
		}
	}
}

func TestFunctionSelectorIsHashPrefix(t *testing.T) {
	fn := MustParseFunction("hello(int8)")
	sel := fn.Selector()
	if want := crypto.Keccak256([]byte("hello(int8)"))[:SelectorLength]; !bytes.Equal(sel[:], want) {
		t.Fatalf("selector %x, want %x", sel, want)
	}
	// integer width is part of the preimage
	other := MustParseFunction("hello(int16)").Selector()
	if sel == other {
		t.Fatal("hello(int8) and hello(int16) share a selector")
	}
}

func TestFunctionEncodeCall(t *testing.T) {
	fn := MustParseFunction("oracle()")
	data, err := fn.EncodeCall()
	if err != nil {
		t.Fatal(err)
	}
	if common.Bytes2Hex(data) != "7dc0d1d0" {
		t.Fatalf("call data %x", data)
	}

	transfer := MustParseFunction("transfer(address,uint256)")
	to := common.HexToAddress("0x8ba1f109551bd432803012645ac136ddd64dba72")
	data, err = transfer.EncodeCall(to, big.NewInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4+64 || common.Bytes2Hex(data[:4]) != "a9059cbb" {
		t.Fatalf("call data %x", data)
	}
	values, err := transfer.DecodeCall(data)
	if err != nil {
		t.Fatal(err)
	}
	if values[0] != to || values[1].(*big.Int).Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("decoded %v", values)
	}
}

func TestFunctionDecodeCallMismatch(t *testing.T) {
	transfer := MustParseFunction("transfer(address,uint256)")
	if _, err := transfer.DecodeCall([]byte{0xa9, 0x05}); err == nil {
		t.Fatal("expected error for truncated selector")
	}
	data, err := MustParseFunction("approve(address,uint256)").EncodeCall(
		common.Address{}, big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := transfer.DecodeCall(data); err == nil {
		t.Fatal("expected error for foreign selector")
	}
}

func TestFunctionString(t *testing.T) {
	fn := MustParseFunction("balanceOf(address) returns (uint256)")
	if got := fn.String(); got != "function balanceOf(address) returns(uint256)" {
		t.Fatalf("String() = %q", got)
	}
	fn = MustParseFunction("oracle()")
	if got := fn.String(); got != "function oracle()" {
		t.Fatalf("String() = %q", got)
	}
}

func TestUnpackRevert(t *testing.T) {
	errData, err := revertFunc.EncodeCall("not enough balance")
	if err != nil {
		t.Fatal(err)
	}
	reason, err := UnpackRevert(errData)
	if err != nil {
		t.Fatal(err)
	}
	if reason != "not enough balance" {
		t.Fatalf("reason = %q", reason)
	}

	panicData, err := panicFunc.EncodeCall(big.NewInt(0x12))
	if err != nil {
		t.Fatal(err)
	}
	reason, err = UnpackRevert(panicData)
	if err != nil {
		t.Fatal(err)
	}
	if reason != "division or modulo by zero" {
		t.Fatalf("reason = %q", reason)
	}

	panicData, err = panicFunc.EncodeCall(big.NewInt(0x99))
	if err != nil {
		t.Fatal(err)
	}
	reason, err = UnpackRevert(panicData)
	if err != nil {
		t.Fatal(err)
	}
	if reason != "unknown panic code: 0x99" {
		t.Fatalf("reason = %q", reason)
	}

	for _, data := range [][]byte{
		nil,
		{0x08, 0xc3},
		common.Hex2Bytes("deadbeef"),
	} {
		if _, err := UnpackRevert(data); err == nil {
			t.Errorf("UnpackRevert(%x): expected error", data)
		}
	}
}
