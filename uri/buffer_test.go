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

import (
	"strings"
	"testing"
)

// TestStringOutputBuffer tests accumulation into the string-building buffer.
func TestStringOutputBuffer(t *testing.T) {
	b := &stringOutputBuffer{builder: &strings.Builder{}}
	b.writeString("http")
	b.writeRune(':')
	b.writeRune('é')

	if got, want := b.string(), "http:é"; got != want {
		t.Errorf("string() = %q, want %q", got, want)
	}
	if got, want := b.len(), len("http:é"); got != want {
		t.Errorf("len() = %d, want %d", got, want)
	}
}

// TestVoidOutputBuffer tests that the discarding buffer tracks byte lengths
// exactly as the string-building buffer would.
func TestVoidOutputBuffer(t *testing.T) {
	v := &voidOutputBuffer{}
	v.writeString("http")
	v.writeRune(':')
	v.writeRune('é') // two bytes in UTF-8

	if got, want := v.len(), len("http:é"); got != want {
		t.Errorf("len() = %d, want %d", got, want)
	}
	if got := v.string(); got != "" {
		t.Errorf("string() = %q, want \"\"", got)
	}
}
