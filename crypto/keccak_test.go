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

package crypto

import (
	"testing"

	"github.com/evmkit/ethabi/common"
)

func TestKeccak256(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"transfer(address,uint256)", "a9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b"},
	} {
		if got := common.Bytes2Hex(Keccak256([]byte(tt.in))); got != tt.want {
			t.Errorf("Keccak256(%q) = %s, want %s", tt.in, got, tt.want)
		}
		if got := Keccak256Hash([]byte(tt.in)); got != common.HexToHash(tt.want) {
			t.Errorf("Keccak256Hash(%q) = %v", tt.in, got)
		}
	}
}

func TestKeccak256Multi(t *testing.T) {
	// chunked writes hash like one concatenated input
	whole := Keccak256([]byte("transfer(address,uint256)"))
	parts := Keccak256([]byte("transfer("), []byte("address,uint256)"))
	if string(whole) != string(parts) {
		t.Fatalf("chunked hash %x, want %x", parts, whole)
	}
}

func TestHashDataReuse(t *testing.T) {
	kh := NewKeccakState()
	first := HashData(kh, []byte("abc"))
	// state must reset between calls
	second := HashData(kh, []byte("abc"))
	if first != second {
		t.Fatalf("reused state diverged: %v vs %v", first, second)
	}
}
