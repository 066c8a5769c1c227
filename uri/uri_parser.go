/*
Copyright 2025 The Uri Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"fmt"
	"strings"
)

const (
	// authorityPrefix marks the start of the authority component after the scheme.
	authorityPrefix = "//"
)

// Positions holds the end indices of the components inside the canonical
// string built by the parser. The canonical string differs from the input
// only in the case of the scheme, so the indices address both.
//
//   - SchemeEnd is the index just past the ':' terminating the scheme.
//   - AuthorityEnd is the end of the authority, including the leading "//".
//     It equals SchemeEnd when there is no authority.
//   - PathEnd is the end of the path.
//   - QueryEnd is the end of the query, including the leading '?'. It equals
//     PathEnd when there is no query. A fragment is present exactly when
//     QueryEnd is less than the length of the string.
type Positions struct {
	SchemeEnd    int
	AuthorityEnd int
	PathEnd      int
	QueryEnd     int
}

// run is the main entry point for the parser. It walks the input once, left
// to right, writing the canonical form to output and recording component
// boundaries. Every input either yields Positions or a *ParseError.
func run(input string, output outputBuffer) (Positions, error) {
	p := &uriParser{input: newParserInput(input), output: output}
	err := p.parseScheme()
	return p.pos, err
}

// uriParser holds the state for a single parsing operation.
type uriParser struct {
	input  *parserInput
	output outputBuffer
	pos    Positions
}

// parseScheme is the initial state of the parser. It consumes the scheme run
// and its terminating ':', lowercasing the scheme into the output.
func (p *uriParser) parseScheme() error {
	startsWithLetter := false
	seen := 0
	for {
		off := p.input.position()
		r, ok := p.input.next()
		if !ok {
			return newParseError(KindMissingScheme, off, "no ':' delimiter terminating the scheme")
		}
		if r == ':' {
			if seen == 0 {
				return newParseError(KindMissingScheme, off, "empty scheme before ':'")
			}
			if !startsWithLetter {
				return newParseError(KindInvalidScheme, 0, "scheme must start with an ASCII letter")
			}
			p.output.writeRune(':')
			p.pos.SchemeEnd = p.output.len()
			return p.parseAuthorityStart()
		}
		if !isSchemeChar(r) {
			return newParseError(KindMissingScheme, off,
				fmt.Sprintf("no ':' delimiter terminating the scheme, found %q", r))
		}
		if seen == 0 {
			startsWithLetter = isASCIILetter(r)
		}
		p.output.writeRune(lowerASCII(r))
		seen++
	}
}

// parseAuthorityStart dispatches on the two characters after "scheme:". Only
// a literal "//" opens an authority; anything else starts the path.
func (p *uriParser) parseAuthorityStart() error {
	if !p.input.startsWith(authorityPrefix) {
		p.pos.AuthorityEnd = p.pos.SchemeEnd
		return p.parsePath()
	}
	p.input.skip(len(authorityPrefix))
	p.output.writeString(authorityPrefix)
	if err := p.parseAuthority(); err != nil {
		return err
	}
	return p.parsePath()
}

// parsePath consumes the path component: everything up to the next '?', '#',
// or end of input. The span is copied byte-for-byte, like the authority, so
// bytes that do not form valid UTF-8 stay reconstructible.
func (p *uriParser) parsePath() error {
	rest := p.input.rest()
	end := strings.IndexAny(rest, "?#")
	if end == -1 {
		end = len(rest)
	}
	p.output.writeString(rest[:end])
	p.input.skip(end)
	p.pos.PathEnd = p.output.len()
	return p.parseQuery()
}

// parseQuery consumes the query component when the path terminated at '?'.
// The span up to '#' or end of input is copied byte-for-byte.
func (p *uriParser) parseQuery() error {
	if !p.input.startsWith("?") {
		p.pos.QueryEnd = p.pos.PathEnd
		return p.parseFragment()
	}
	p.input.skip(1)
	p.output.writeRune('?')
	rest := p.input.rest()
	end := strings.IndexByte(rest, '#')
	if end == -1 {
		end = len(rest)
	}
	p.output.writeString(rest[:end])
	p.input.skip(end)
	p.pos.QueryEnd = p.output.len()
	return p.parseFragment()
}

// parseFragment consumes the remainder of the input. It is the final state;
// the cursor is either at end of input or on a '#', and everything from the
// '#' on is copied byte-for-byte.
func (p *uriParser) parseFragment() error {
	rest := p.input.rest()
	p.output.writeString(rest)
	p.input.skip(len(rest))
	return nil
}
