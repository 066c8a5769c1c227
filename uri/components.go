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
	"strconv"
	"strings"
)

// Components holds the individual parts of a URI for explicit field-by-field
// construction. Each optional component carries a Has flag so that an absent
// component is distinguishable from a present, empty one; a component whose
// flag is false contributes neither its content nor its delimiter to the
// recomposed string.
//
// Components performs no validation: callers are expected to respect the
// invariants of the grammar (Scheme set and well-formed, HasPort implying
// HasHost). Values obtained from Uri.Components always do.
type Components struct {
	Scheme      string
	Userinfo    string
	HasUserinfo bool
	Host        string
	HasHost     bool
	Port        uint16
	HasPort     bool
	Path        string
	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// Components returns a decomposed snapshot of the URI. The snapshot is an
// independent value; modifying it does not affect the Uri it came from.
func (u *Uri) Components() Components {
	c := Components{Scheme: u.Scheme(), Path: u.Path()}
	c.Userinfo, c.HasUserinfo = u.Userinfo()
	c.Host, c.HasHost = u.Host()
	c.Port, c.HasPort = u.Port()
	c.Query, c.HasQuery = u.Query()
	c.Fragment, c.HasFragment = u.Fragment()
	return c
}

// String recomposes the canonical textual form per the grammar
//
//	scheme ":" ["//" [userinfo "@"] host [":" port]] path ["?" query] ["#" fragment]
//
// It is a pure formatting operation with no failure modes; no validation is
// re-run. The port is rendered in decimal with no leading zeros.
func (c Components) String() string {
	var b strings.Builder
	b.WriteString(c.Scheme)
	b.WriteRune(':')
	if c.HasHost {
		b.WriteString(authorityPrefix)
		if c.HasUserinfo {
			b.WriteString(c.Userinfo)
			b.WriteRune('@')
		}
		b.WriteString(c.Host)
		if c.HasPort {
			b.WriteRune(':')
			b.WriteString(strconv.FormatUint(uint64(c.Port), 10))
		}
	}
	b.WriteString(c.Path)
	if c.HasQuery {
		b.WriteRune('?')
		b.WriteString(c.Query)
	}
	if c.HasFragment {
		b.WriteRune('#')
		b.WriteString(c.Fragment)
	}
	return b.String()
}

// URI parses the recomposed form back into a Uri, validating it in the
// process.
func (c Components) URI() (*Uri, error) {
	return Parse(c.String())
}

// Username returns the part of the userinfo before the first ':' and a
// boolean indicating whether a userinfo was present.
func (c Components) Username() (string, bool) {
	if !c.HasUserinfo {
		return "", false
	}
	username, _, _ := strings.Cut(c.Userinfo, ":")
	return username, true
}

// Password returns the part of the userinfo after the first ':' and a
// boolean indicating whether that part was present. Like the userinfo
// itself, the password is not percent-decoded.
func (c Components) Password() (string, bool) {
	if !c.HasUserinfo {
		return "", false
	}
	_, password, found := strings.Cut(c.Userinfo, ":")
	if !found {
		return "", false
	}
	return password, true
}
