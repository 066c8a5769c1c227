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

//nolint:testpackage // White-box tests; kept in-package to reach unexported helpers.
package uri

import "testing"

// TestParserInputNextPeek tests cursor advancement and lookahead, including
// multi-byte runes.
func TestParserInputNextPeek(t *testing.T) {
	p := newParserInput("a\u00e9b")

	r, ok := p.peek()
	if !ok || r != 'a' {
		t.Fatalf("peek() = (%q, %v), want ('a', true)", r, ok)
	}
	if p.position() != 0 {
		t.Errorf("position() after peek = %d, want 0", p.position())
	}

	r, ok = p.next()
	if !ok || r != 'a' {
		t.Fatalf("next() = (%q, %v), want ('a', true)", r, ok)
	}
	if p.position() != 1 {
		t.Errorf("position() = %d, want 1", p.position())
	}

	r, ok = p.next()
	if !ok || r != '\u00e9' {
		t.Fatalf("next() = (%q, %v), want ('\u00e9', true)", r, ok)
	}
	if p.position() != 3 {
		t.Errorf("position() after two-byte rune = %d, want 3", p.position())
	}

	r, ok = p.next()
	if !ok || r != 'b' {
		t.Fatalf("next() = (%q, %v), want ('b', true)", r, ok)
	}
	if _, ok = p.next(); ok {
		t.Error("next() past end of input reported ok")
	}
	if _, ok = p.peek(); ok {
		t.Error("peek() past end of input reported ok")
	}
}

// TestParserInputStartsWithSkipRest tests the bounded lookahead helpers the
// authority dispatch relies on.
func TestParserInputStartsWithSkipRest(t *testing.T) {
	p := newParserInput("s://h/p")
	p.skip(2) // past "s:"

	if !p.startsWith("//") {
		t.Error("startsWith(\"//\") = false, want true")
	}
	if p.startsWith("///") {
		t.Error("startsWith(\"///\") = true, want false")
	}

	p.skip(2)
	if got := p.rest(); got != "h/p" {
		t.Errorf("rest() = %q, want %q", got, "h/p")
	}
	if got := p.position(); got != 4 {
		t.Errorf("position() = %d, want 4", got)
	}

	empty := newParserInput("")
	if empty.startsWith("/") {
		t.Error("startsWith on empty input = true, want false")
	}
	if got := empty.rest(); got != "" {
		t.Errorf("rest() on empty input = %q, want \"\"", got)
	}
}
