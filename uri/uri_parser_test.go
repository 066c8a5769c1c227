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

// TestRunPositions tests the component boundaries recorded by a full scan.
// Offsets address the canonical string, which has the same length as the
// input (only the scheme's case changes).
func TestRunPositions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Positions
	}{
		{
			name:  "all components",
			input: "a://h?x#y",
			want:  Positions{SchemeEnd: 2, AuthorityEnd: 5, PathEnd: 5, QueryEnd: 7},
		},
		{
			name:  "no authority",
			input: "mailto:u@e",
			want:  Positions{SchemeEnd: 7, AuthorityEnd: 7, PathEnd: 10, QueryEnd: 10},
		},
		{
			name:  "authority only",
			input: "http://host",
			want:  Positions{SchemeEnd: 5, AuthorityEnd: 11, PathEnd: 11, QueryEnd: 11},
		},
		{
			name:  "empty authority",
			input: "file:///p",
			want:  Positions{SchemeEnd: 5, AuthorityEnd: 7, PathEnd: 9, QueryEnd: 9},
		},
		{
			name:  "fragment without query",
			input: "s://h#f",
			want:  Positions{SchemeEnd: 2, AuthorityEnd: 5, PathEnd: 5, QueryEnd: 5},
		},
		{
			name:  "query without fragment",
			input: "s://h/p?q",
			want:  Positions{SchemeEnd: 2, AuthorityEnd: 5, PathEnd: 7, QueryEnd: 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var builder strings.Builder
			got, err := run(tt.input, &stringOutputBuffer{builder: &builder})
			if err != nil {
				t.Fatalf("run(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("run(%q) positions = %+v, want %+v", tt.input, got, tt.want)
			}
			if builder.Len() != len(tt.input) {
				t.Errorf("run(%q) canonical length = %d, want %d",
					tt.input, builder.Len(), len(tt.input))
			}
		})
	}
}

// TestRunBufferAgreement tests that the void buffer tracks the same
// positions as the string-building buffer, which IsURI relies on.
func TestRunBufferAgreement(t *testing.T) {
	inputs := []string{
		"https://user@example.com:8080/a/b?c=d#e",
		"HTTPS://Example.COM/",
		"urn:isbn:0451450523",
		"file:///stra\u00dfe",
	}
	for _, input := range inputs {
		var builder strings.Builder
		withString, err := run(input, &stringOutputBuffer{builder: &builder})
		if err != nil {
			t.Fatalf("run(%q) unexpected error: %v", input, err)
		}
		withVoid, err := run(input, &voidOutputBuffer{})
		if err != nil {
			t.Fatalf("run(%q) with void buffer unexpected error: %v", input, err)
		}
		if withString != withVoid {
			t.Errorf("run(%q) positions differ between buffers: %+v vs %+v",
				input, withString, withVoid)
		}
	}
}

// TestParseSchemeStates tests the scheme state in isolation: what terminates
// it, what invalidates it, and the lowercasing of the stored run.
func TestParseSchemeStates(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantKind   ErrorKind
		wantScheme string
	}{
		{
			name:       "simple",
			input:      "http://x",
			wantScheme: "http:",
		},
		{
			name:       "mixed case lowercased",
			input:      "HtTp:y",
			wantScheme: "http:",
		},
		{
			name:       "digits and punctuation after first letter",
			input:      "x11+ssh.2-a:z",
			wantScheme: "x11+ssh.2-a:",
		},
		{
			name:     "leading colon",
			input:    ":x",
			wantErr:  true,
			wantKind: KindMissingScheme,
		},
		{
			name:     "leading digit",
			input:    "9p://x",
			wantErr:  true,
			wantKind: KindInvalidScheme,
		},
		{
			name:     "slash before colon",
			input:    "a/b:c",
			wantErr:  true,
			wantKind: KindMissingScheme,
		},
		{
			name:     "end of input before colon",
			input:    "abc",
			wantErr:  true,
			wantKind: KindMissingScheme,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var builder strings.Builder
			p := &uriParser{
				input:  newParserInput(tt.input),
				output: &stringOutputBuffer{builder: &builder},
			}
			err := p.parseScheme()
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScheme() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				parseErr, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("parseScheme() error = %T, want *ParseError", err)
				}
				if parseErr.Kind != tt.wantKind {
					t.Errorf("parseScheme() kind = %v, want %v", parseErr.Kind, tt.wantKind)
				}
				return
			}
			if got := builder.String()[:p.pos.SchemeEnd]; got != tt.wantScheme {
				t.Errorf("parseScheme() stored %q, want %q", got, tt.wantScheme)
			}
		})
	}
}
