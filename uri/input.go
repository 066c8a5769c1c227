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
	"strings"
	"unicode/utf8"
)

// parserInput is a cursor over the immutable input string. It supports
// peeking, advancing, and byte-offset tracking for error reporting.
type parserInput struct {
	s   string
	pos int
}

// newParserInput creates a new parserInput over the given string.
func newParserInput(s string) *parserInput {
	return &parserInput{s: s}
}

// next returns the rune at the cursor and advances past it.
func (p *parserInput) next() (rune, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(p.s[p.pos:])
	p.pos += size
	return r, true
}

// peek returns the rune at the cursor without advancing.
func (p *parserInput) peek() (rune, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.s[p.pos:])
	return r, true
}

// startsWith checks if the unread input starts with the given prefix.
func (p *parserInput) startsWith(prefix string) bool {
	return strings.HasPrefix(p.s[p.pos:], prefix)
}

// skip advances the cursor by n bytes.
func (p *parserInput) skip(n int) {
	p.pos += n
}

// position returns the byte offset of the cursor from the start of the input.
func (p *parserInput) position() int {
	return p.pos
}

// rest returns the unread portion of the input.
func (p *parserInput) rest() string {
	return p.s[p.pos:]
}
