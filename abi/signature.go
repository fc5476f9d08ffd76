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

import "strconv"

// This file implements the textual signature grammar:
//
//	['function'] name '(' paramList? ')' [['returns']? '(' paramList? ')']
//	['event'] name '(' eventParamList? ')' ['anonymous']
//
// A param is a type expression optionally followed by an argument name; event
// params additionally accept the 'indexed' keyword between type and name.
// Whitespace is tolerated and discarded anywhere between tokens. Aliases
// 'uint' and 'int' canonicalize to their 256 bit spellings, so rendering a
// parsed type reproduces exactly the canonical signature the hashes are
// computed over.

// ParseType parses a single type expression, e.g. "uint256", "(address,bool)[2]".
func ParseType(s string) (Type, error) {
	p := &sigParser{s: s}
	typ, err := p.parseTypeExpr()
	if err != nil {
		return Type{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return Type{}, parseErr("trailing characters %q in type %q", p.rest(), s)
	}
	return typ, nil
}

// ParseSignature parses a function signature into its name and the ordered
// input and output type lists.
func ParseSignature(s string) (name string, inputs, outputs []Type, err error) {
	p := &sigParser{s: s}
	name, err = p.parseName("function")
	if err != nil {
		return "", nil, nil, err
	}
	if inputs, err = p.parseTypeList(); err != nil {
		return "", nil, nil, err
	}
	p.skipSpace()
	if p.eof() {
		return name, inputs, nil, nil
	}
	if p.peek() != '(' {
		kw, kwErr := p.parseIdent()
		if kwErr != nil || kw != "returns" {
			return "", nil, nil, parseErr("unexpected string %q in signature %q", p.rest(), s)
		}
	}
	if outputs, err = p.parseTypeList(); err != nil {
		return "", nil, nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return "", nil, nil, parseErr("trailing characters %q in signature %q", p.rest(), s)
	}
	return name, inputs, outputs, nil
}

// parseEventDef parses an event signature, including indexed markers and the
// optional anonymous suffix.
func parseEventDef(s string) (name string, inputs []EventInput, anonymous bool, err error) {
	p := &sigParser{s: s}
	if name, err = p.parseName("event"); err != nil {
		return "", nil, false, err
	}
	if inputs, err = p.parseEventParams(); err != nil {
		return "", nil, false, err
	}
	p.skipSpace()
	if !p.eof() {
		kw, kwErr := p.parseIdent()
		if kwErr != nil || kw != "anonymous" {
			return "", nil, false, parseErr("trailing characters %q in event %q", p.rest(), s)
		}
		anonymous = true
		p.skipSpace()
		if !p.eof() {
			return "", nil, false, parseErr("trailing characters %q in event %q", p.rest(), s)
		}
	}
	return name, inputs, anonymous, nil
}

type sigParser struct {
	s   string
	pos int
}

func (p *sigParser) eof() bool { return p.pos >= len(p.s) }

func (p *sigParser) rest() string { return p.s[p.pos:] }

func (p *sigParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) skipSpace() {
	for !p.eof() {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *sigParser) expect(c byte) error {
	p.skipSpace()
	if p.eof() || p.s[p.pos] != c {
		return parseErr("expected %q, got %q", string(c), p.rest())
	}
	p.pos++
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentSymbol(c byte) bool { return c == '$' || c == '_' }

// parseIdent consumes an identifier token.
func (p *sigParser) parseIdent() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", parseErr("expected identifier, got end of input")
	}
	if c := p.s[p.pos]; !isAlpha(c) && !isIdentSymbol(c) {
		return "", parseErr("invalid token start: %c", c)
	}
	start := p.pos
	for !p.eof() {
		c := p.s[p.pos]
		if !isAlpha(c) && !isDigit(c) && !isIdentSymbol(c) {
			break
		}
		p.pos++
	}
	return p.s[start:p.pos], nil
}

// parseName consumes the declaration name, tolerating an optional leading
// keyword ('function' or 'event'). The keyword itself can serve as the name
// when it is directly followed by the parameter list.
func (p *sigParser) parseName(keyword string) (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", parseErr("empty signature")
	}
	name, err := p.parseIdent()
	if err != nil {
		return "", err
	}
	if name == keyword {
		p.skipSpace()
		if p.peek() != '(' {
			return p.parseIdent()
		}
	}
	return name, nil
}

// parseTypeList parses a parenthesized comma-separated list of types. Each
// type may be followed by an argument name, which is discarded.
func (p *sigParser) parseTypeList() ([]Type, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	types := make([]Type, 0)
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return types, nil
	}
	for {
		typ, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		// optional argument name
		p.skipSpace()
		if c := p.peek(); isAlpha(c) || isIdentSymbol(c) {
			if _, err := p.parseIdent(); err != nil {
				return nil, err
			}
		}
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return types, nil
		default:
			return nil, parseErr("expected ',' or ')', got %q", p.rest())
		}
	}
}

// parseEventParams parses a parenthesized event parameter list, each entry
// being a type optionally followed by 'indexed' and an argument name.
func (p *sigParser) parseEventParams() ([]EventInput, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	inputs := make([]EventInput, 0)
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return inputs, nil
	}
	for {
		typ, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		in := EventInput{Type: typ}
		p.skipSpace()
		if c := p.peek(); isAlpha(c) || isIdentSymbol(c) {
			tok, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			if tok == "indexed" {
				in.Indexed = true
				p.skipSpace()
				if c := p.peek(); isAlpha(c) || isIdentSymbol(c) {
					if tok, err = p.parseIdent(); err != nil {
						return nil, err
					}
					in.Name = tok
				}
			} else {
				in.Name = tok
			}
		}
		inputs = append(inputs, in)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return inputs, nil
		default:
			return nil, parseErr("expected ',' or ')', got %q", p.rest())
		}
	}
}

// parseTypeExpr parses a type expression: an elementary type keyword or a
// parenthesized tuple, followed by any number of stacked [] / [N] suffixes.
func (p *sigParser) parseTypeExpr() (Type, error) {
	p.skipSpace()
	if p.eof() {
		return Type{}, parseErr("expected type, got end of input")
	}
	var (
		typ Type
		err error
	)
	if p.peek() == '(' {
		typ, err = p.parseTupleType()
	} else {
		typ, err = p.parseElementaryType()
	}
	if err != nil {
		return Type{}, err
	}
	// stacked array suffixes, innermost first: uint32[2][] is a dynamic
	// slice of uint32[2]
	for {
		p.skipSpace()
		if p.peek() != '[' {
			return typ, nil
		}
		p.pos++
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			typ = SliceType(typ)
			continue
		}
		start := p.pos
		for isDigit(p.peek()) {
			p.pos++
		}
		if start == p.pos {
			return Type{}, parseErr("expected array length or ']', got %q", p.rest())
		}
		n, convErr := strconv.Atoi(p.s[start:p.pos])
		if convErr != nil {
			return Type{}, parseErr("invalid array length %q", p.s[start:p.pos])
		}
		if err := p.expect(']'); err != nil {
			return Type{}, err
		}
		if typ, err = ArrayType(n, typ); err != nil {
			return Type{}, err
		}
	}
}

func (p *sigParser) parseTupleType() (Type, error) {
	// caller guaranteed the '('
	p.pos++
	var fields []Type
	for {
		field, err := p.parseTypeExpr()
		if err != nil {
			return Type{}, err
		}
		fields = append(fields, field)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return TupleType(fields...), nil
		default:
			return Type{}, parseErr("expected ',' or ')' in tuple, got %q", p.rest())
		}
	}
}

// parseElementaryType maps a type keyword token to its descriptor,
// canonicalizing the uint/int aliases.
func (p *sigParser) parseElementaryType() (Type, error) {
	tok, err := p.parseIdent()
	if err != nil {
		return Type{}, err
	}
	// split the token into its alphabetic base and a trailing size
	split := len(tok)
	for i := 0; i < len(tok); i++ {
		if isDigit(tok[i]) {
			split = i
			break
		}
	}
	base, sizeStr := tok[:split], tok[split:]
	var size int
	if sizeStr != "" {
		if size, err = strconv.Atoi(sizeStr); err != nil {
			return Type{}, parseErr("unsupported arg type: %s", tok)
		}
	}
	switch base {
	case "uint":
		if sizeStr == "" {
			size = 256
		}
		return UintType(size)
	case "int":
		if sizeStr == "" {
			size = 256
		}
		return IntType(size)
	case "address":
		if sizeStr != "" {
			return Type{}, parseErr("unsupported arg type: %s", tok)
		}
		return AddressType(), nil
	case "bool":
		if sizeStr != "" {
			return Type{}, parseErr("unsupported arg type: %s", tok)
		}
		return BoolType(), nil
	case "string":
		if sizeStr != "" {
			return Type{}, parseErr("unsupported arg type: %s", tok)
		}
		return StringType(), nil
	case "bytes":
		if sizeStr == "" {
			return BytesType(), nil
		}
		return FixedBytesType(size)
	default:
		return Type{}, parseErr("unsupported arg type: %s", tok)
	}
}
