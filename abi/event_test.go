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
	"testing"

	"github.com/evmkit/ethabi/common"
	"github.com/evmkit/ethabi/core/types"
	"github.com/evmkit/ethabi/crypto"
)

var transferEvent = MustParseEvent("Transfer(address indexed from, address indexed to, uint256 value)")

func TestEventID(t *testing.T) {
	want := common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	if transferEvent.ID() != want {
		t.Fatalf("ID() = %v, want %v", transferEvent.ID(), want)
	}
	if transferEvent.Sig() != "Transfer(address,address,uint256)" {
		t.Fatalf("Sig() = %q", transferEvent.Sig())
	}
}

func TestEventDecodeLog(t *testing.T) {
	from := common.HexToAddress("0x0000000000000000000000000000000000000001")
	to := common.HexToAddress("0x0000000000000000000000000000000000000002")
	data, err := Encode([]Type{typ(t, "uint256")}, []interface{}{big.NewInt(500)})
	if err != nil {
		t.Fatal(err)
	}
	log := &types.Log{
		Topics: []common.Hash{
			transferEvent.ID(),
			common.BytesToHash(common.LeftPadBytes(from[:], 32)),
			common.BytesToHash(common.LeftPadBytes(to[:], 32)),
		},
		Data: data,
	}
	values, err := transferEvent.DecodeLog(log)
	if err != nil {
		t.Fatal(err)
	}
	if values == nil {
		t.Fatal("log did not match event shape")
	}
	if values[0] != from || values[1] != to {
		t.Fatalf("addresses = %v, %v", values[0], values[1])
	}
	if values[2].(*big.Int).Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("value = %v", values[2])
	}
}

func TestEventDecodeLogMismatch(t *testing.T) {
	data, err := Encode([]Type{typ(t, "uint256")}, []interface{}{big.NewInt(1)})
	if err != nil {
		t.Fatal(err)
	}
	addrTopic := common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000001")

	// shape mismatches probe as non-matches, not errors
	for _, log := range []*types.Log{
		// too few topics
		{Topics: []common.Hash{transferEvent.ID(), addrTopic}, Data: data},
		// too many topics
		{Topics: []common.Hash{transferEvent.ID(), addrTopic, addrTopic, addrTopic}, Data: data},
		// foreign signature topic
		{Topics: []common.Hash{crypto.Keccak256Hash([]byte("Approval(address,address,uint256)")), addrTopic, addrTopic}, Data: data},
		// missing data payload
		{Topics: []common.Hash{transferEvent.ID(), addrTopic, addrTopic}},
	} {
		values, err := transferEvent.DecodeLog(log)
		if err != nil {
			t.Fatalf("%v: %v", log.Topics, err)
		}
		if values != nil {
			t.Fatalf("%v: expected non-match, decoded %v", log.Topics, values)
		}
	}

	// corrupt payloads are errors
	log := &types.Log{
		Topics: []common.Hash{transferEvent.ID(), addrTopic, addrTopic},
		Data:   data[:31],
	}
	if _, err := transferEvent.DecodeLog(log); err == nil {
		t.Fatal("expected error for truncated data")
	}
}

func TestEventDecodeLogAnonymous(t *testing.T) {
	ev := MustParseEvent("Ping(uint256 indexed n, bool up) anonymous")
	data, err := Encode([]Type{typ(t, "bool")}, []interface{}{true})
	if err != nil {
		t.Fatal(err)
	}
	log := &types.Log{
		// no signature topic for anonymous events
		Topics: []common.Hash{common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000007")},
		Data:   data,
	}
	values, err := ev.DecodeLog(log)
	if err != nil {
		t.Fatal(err)
	}
	if values == nil {
		t.Fatal("log did not match event shape")
	}
	if values[0].(*big.Int).Cmp(big.NewInt(7)) != 0 || values[1] != true {
		t.Fatalf("decoded %v", values)
	}
}

func TestEventDecodeLogIndexedDynamic(t *testing.T) {
	ev := MustParseEvent("Named(string indexed name, uint8 n)")
	nameTopic := crypto.Keccak256Hash([]byte("alice"))
	data, err := Encode([]Type{typ(t, "uint8")}, []interface{}{uint8(3)})
	if err != nil {
		t.Fatal(err)
	}
	log := &types.Log{
		Topics: []common.Hash{ev.ID(), nameTopic},
		Data:   data,
	}
	values, err := ev.DecodeLog(log)
	if err != nil {
		t.Fatal(err)
	}
	// the string itself is unrecoverable, only its hash survives
	if values[0] != nameTopic {
		t.Fatalf("indexed string topic = %v, want %v", values[0], nameTopic)
	}
	if values[1] != uint8(3) {
		t.Fatalf("n = %v", values[1])
	}
}

func TestEventEncodeTopics(t *testing.T) {
	from := common.HexToAddress("0x0000000000000000000000000000000000000001")
	topics, err := transferEvent.EncodeTopics(from, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != 3 {
		t.Fatalf("got %d topics", len(topics))
	}
	if topics[0] != transferEvent.ID() {
		t.Fatalf("topic 0 = %v", topics[0])
	}
	if topics[1] != common.BytesToHash(common.LeftPadBytes(from[:], 32)) {
		t.Fatalf("topic 1 = %v", topics[1])
	}
	if topics[2] != (common.Hash{}) {
		t.Fatalf("topic 2 = %v, want wildcard", topics[2])
	}

	// dynamic indexed values are hashed
	named := MustParseEvent("Named(string indexed name, uint8 n)")
	topics, err = named.EncodeTopics("hello")
	if err != nil {
		t.Fatal(err)
	}
	if want := crypto.Keccak256Hash([]byte("hello")); topics[1] != want {
		t.Fatalf("topic 1 = %v, want %v", topics[1], want)
	}

	if _, err := transferEvent.EncodeTopics(from); err == nil {
		t.Fatal("expected error for argument count mismatch")
	}
}

func TestEventString(t *testing.T) {
	want := "event Transfer(address indexed from, address indexed to, uint256 value)"
	if got := transferEvent.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	// unnamed inputs get positional names
	ev := MustParseEvent("Ping(bytes32 indexed)")
	if got := ev.String(); got != "event Ping(bytes32 indexed arg0)" {
		t.Fatalf("String() = %q", got)
	}
}
