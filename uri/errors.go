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

import "fmt"

// ErrorKind identifies the category of a parse failure. The set is closed so
// that callers can branch on the failure category instead of matching on
// error strings.
type ErrorKind int

const (
	// KindMissingScheme indicates that no ':' terminated scheme was found
	// before an invalid character or the end of the input.
	KindMissingScheme ErrorKind = iota
	// KindInvalidScheme indicates that a scheme run was found but violates
	// the scheme grammar (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )).
	KindInvalidScheme
	// KindInvalidPort indicates a port that is not all ASCII digits or that
	// overflows the valid port range (0-65535).
	KindInvalidPort
	// KindInvalidCharacter indicates a character in a position where the
	// grammar forbids it, such as whitespace inside the authority.
	KindInvalidCharacter
	// KindInvalidAuthority indicates a structurally malformed authority,
	// such as an unterminated or invalid IP literal.
	KindInvalidAuthority
)

// String returns a short human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingScheme:
		return "missing scheme"
	case KindInvalidScheme:
		return "invalid scheme"
	case KindInvalidPort:
		return "invalid port"
	case KindInvalidCharacter:
		return "invalid character"
	case KindInvalidAuthority:
		return "invalid authority"
	}
	return "unknown"
}

// ParseError is the error type returned by parsing functions in this package.
// It carries the failure category, the byte offset of the first grammar
// violation in the input, and a descriptive message.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error at offset %d: %s", e.Offset, e.Message)
}

// newParseError creates a new ParseError for the given kind and input offset.
func newParseError(kind ErrorKind, offset int, message string) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Message: message}
}
