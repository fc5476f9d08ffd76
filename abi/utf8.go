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

import "unicode/utf8"

// checkUTF8 rejects strings that are not valid UTF-8. The string type is
// UTF-8 by contract, so a malformed Go string must not reach the wire.
func checkUTF8(s string) error {
	if !utf8.ValidString(s) {
		return codecErr("string is not valid UTF-8")
	}
	return nil
}

// utf8Length validates s and returns the byte length of its UTF-8 encoding,
// the length the packed mode emits.
func utf8Length(s string) (int, error) {
	if err := checkUTF8(s); err != nil {
		return 0, err
	}
	return len(s), nil
}
