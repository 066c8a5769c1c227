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

// Package uri provides types and functions for decomposing URI strings into
// their components and building URI strings back from components, following
// the generic grammar of RFC 3986.
//
// The central type is Uri, an immutable value produced by Parse. A Uri
// records where each component of the URI begins and ends, so accessors
// return substrings of the original text without further allocation.
//
// Key features include:
//   - Single-pass parsing with typed, offset-carrying errors.
//   - Absent and empty components are distinguished: accessors for optional
//     components report presence separately from content.
//   - Explicit field-by-field construction through the Components type.
//   - Validation-only checking via IsURI with no result allocation.
//   - Support for JSON marshalling and unmarshalling.
//
// Parsing performs no percent-decoding and no Unicode normalization; escaped
// and non-ASCII characters pass through verbatim in whichever component
// contains them. ParseNormalized and ASCIIHost are thin conveniences layered
// on top of the parsed structure for callers that need NFC input folding or
// a DNS-resolvable host form.
package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Uri represents a parsed URI. It is an immutable value: it stores the
// canonical text (the input with the scheme lowercased) together with the
// component positions, and is safe to copy and to use from multiple
// goroutines. The zero value is not a valid Uri; use Parse or
// Components.String to obtain one.
type Uri struct {
	raw string
	pos Positions
}

// Parse parses s as a URI. It scans the input once, left to right, and
// either returns a fully populated Uri or a *ParseError describing the first
// grammar violation; there is no partial result. The scheme is mandatory and
// is lowercased in the stored form; every other component is optional and is
// stored verbatim.
func Parse(s string) (*Uri, error) {
	var builder strings.Builder
	builder.Grow(len(s))
	pos, err := run(s, &stringOutputBuffer{builder: &builder})
	if err != nil {
		return nil, err
	}
	return &Uri{raw: builder.String(), pos: pos}, nil
}

// ParseNormalized folds the input to Unicode Normalization Form C (NFC)
// before parsing. This is useful when the source of the string is not a
// pre-normalized Unicode producer and canonically equivalent URIs must
// compare equal. The parser itself never normalizes.
func ParseNormalized(s string) (*Uri, error) {
	return Parse(norm.NFC.String(s))
}

// IsURI reports whether s parses as a URI. It runs the same scan as Parse
// against a discarding buffer, so no result string is allocated.
func IsURI(s string) bool {
	_, err := run(s, &voidOutputBuffer{})
	return err == nil
}

// String returns the canonical stored form of the URI. It differs from the
// input Parse accepted in exactly two ways: the scheme is lowercased, and a
// lone ':' after a bracketed IP literal with no port digits behind it is
// dropped. Every other byte, valid UTF-8 or not, is preserved as given.
func (u *Uri) String() string {
	return u.raw
}

// Scheme returns the scheme component. It is always present and lowercase.
func (u *Uri) Scheme() string {
	return u.raw[:u.pos.SchemeEnd-1]
}

// Authority returns the authority component without the leading "//" and a
// boolean indicating whether it was present. An authority is present exactly
// when the input contained "//" after the scheme, even if the remainder was
// empty.
func (u *Uri) Authority() (string, bool) {
	if u.pos.AuthorityEnd <= u.pos.SchemeEnd {
		return "", false
	}
	return u.raw[u.pos.SchemeEnd+len(authorityPrefix) : u.pos.AuthorityEnd], true
}

// Userinfo returns the userinfo component (the part of the authority before
// the last '@', without the '@') and a boolean indicating whether it was
// present.
func (u *Uri) Userinfo() (string, bool) {
	authority, ok := u.Authority()
	if !ok {
		return "", false
	}
	userinfo, hasUserinfo, _, _ := splitAuthority(authority)
	return userinfo, hasUserinfo
}

// Host returns the host component and a boolean indicating whether it was
// present. A host is present whenever an authority is; "scheme:///path" has
// a present, empty host.
func (u *Uri) Host() (string, bool) {
	authority, ok := u.Authority()
	if !ok {
		return "", false
	}
	_, _, host, _ := splitAuthority(authority)
	return host, true
}

// Port returns the port component and a boolean indicating whether it was
// present. A present port always implies a present host.
func (u *Uri) Port() (uint16, bool) {
	authority, ok := u.Authority()
	if !ok {
		return 0, false
	}
	_, _, _, port := splitAuthority(authority)
	if port == "" {
		return 0, false
	}
	// The parser has already validated the digits and range.
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Path returns the path component. A path has no presence flag: the segment
// between the authority (or the scheme, when there is no authority) and the
// first '?' or '#' is the path, and it is the empty string when that segment
// has no characters.
func (u *Uri) Path() string {
	return u.raw[u.pos.AuthorityEnd:u.pos.PathEnd]
}

// Query returns the raw query component (the part between '?' and '#',
// without the '?') and a boolean indicating whether it was present. The
// query is not decomposed into key/value pairs.
func (u *Uri) Query() (string, bool) {
	if u.pos.PathEnd >= u.pos.QueryEnd {
		return "", false
	}
	return u.raw[u.pos.PathEnd+1 : u.pos.QueryEnd], true
}

// Fragment returns the fragment component (the part after '#', without the
// '#') and a boolean indicating whether it was present.
func (u *Uri) Fragment() (string, bool) {
	if u.pos.QueryEnd >= len(u.raw) {
		return "", false
	}
	return u.raw[u.pos.QueryEnd+1:], true
}

// ASCIIHost returns the DNS-resolvable ASCII (Punycode) form of the host and
// a boolean indicating whether a host was present. IP literals and hosts
// that IDNA cannot convert are returned as stored. This is a convenience
// over the parsed structure; parsing itself never applies IDNA.
func (u *Uri) ASCIIHost() (string, bool) {
	host, ok := u.Host()
	if !ok {
		return "", false
	}
	if strings.HasPrefix(host, "[") {
		return host, true
	}
	ascii, err := idna.ToASCII(host)
	if err != nil {
		return host, true
	}
	return ascii, true
}

// MarshalJSON implements the json.Marshaler interface, encoding the Uri as a
// JSON string in canonical form.
func (u *Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.raw)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a Uri, performing full validation in the process.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
