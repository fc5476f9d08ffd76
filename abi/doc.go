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

// Package abi implements the Ethereum contract ABI encoding.
//
// The package translates between textual function and event signatures and
// the canonical wire format used by contract calls and event logs. Parse a
// signature once, then reuse the resulting descriptor freely across
// goroutines:
//
//	transfer := abi.MustParseFunction("transfer(address,uint256) returns (bool)")
//	data, err := transfer.EncodeCall(to, amount)
//
// Encoding follows the head/tail scheme of the Solidity ABI specification:
// static values are stored in place, dynamic values behind 32 byte offsets
// into a tail region. EncodePacked implements the offset-free
// abi.encodePacked concatenation with its distinct padding rules.
//
// All decoding treats its input as untrusted: offsets and lengths are
// bounds-checked and recursion depth is capped, so corrupt or hostile chain
// data fails with a *CodecError instead of exhausting the stack.
package abi
