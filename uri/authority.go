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
	"net"
	"strconv"
	"strings"
	"unicode"
)

const (
	// maxPort is the highest valid port number.
	maxPort = 65535
	// ipvFutureParts is the number of parts in an IPvFuture literal
	// (e.g., "v1.abc"), separated by a dot.
	ipvFutureParts = 2
)

// parseAuthority consumes and validates the authority component from the
// input stream. The authority span runs up to the next '/', '?', '#', or end
// of input; within it, the last '@' bounds the userinfo and the host/port
// split is bracket-aware.
func (p *uriParser) parseAuthority() error {
	spanStart := p.input.position()
	rest := p.input.rest()
	end := len(rest)
	for i, r := range rest {
		if r == '/' || r == '?' || r == '#' {
			end = i
			break
		}
	}

	userinfo, hasUserinfo, host, port := splitAuthority(rest[:end])

	hostStart := spanStart
	if hasUserinfo {
		if err := checkAuthorityChars(userinfo, spanStart); err != nil {
			return err
		}
		hostStart += len(userinfo) + 1
	}
	if err := validateHost(host, hostStart); err != nil {
		return err
	}
	if port != "" {
		if err := checkPort(port, hostStart+len(host)+1); err != nil {
			return err
		}
	}

	if hasUserinfo {
		p.output.writeString(userinfo)
		p.output.writeRune('@')
	}
	p.output.writeString(host)
	if port != "" {
		p.output.writeRune(':')
		p.output.writeString(port)
	}

	p.input.skip(end)
	p.pos.AuthorityEnd = p.output.len()
	return nil
}

// splitAuthority is the single, stateless utility that deconstructs an
// authority string into its userinfo, host, and port parts. Everything before
// the last '@' is userinfo. The host/port split is bracket-aware for IP
// literals; outside brackets it happens at the last ':' only when the
// remainder is all ASCII digits, otherwise the whole portion is the host.
func splitAuthority(authority string) (userinfo string, hasUserinfo bool, host, port string) {
	hostport := authority
	if i := strings.LastIndex(authority, "@"); i != -1 {
		userinfo, hasUserinfo = authority[:i], true
		hostport = authority[i+1:]
	}

	host = hostport
	if strings.HasPrefix(hostport, "[") {
		end := strings.LastIndex(hostport, "]")
		if end != -1 && len(hostport) > end+1 && hostport[end+1] == ':' {
			host, port = hostport[:end+1], hostport[end+2:]
		}
		return userinfo, hasUserinfo, host, port
	}

	if i := strings.LastIndex(hostport, ":"); i != -1 {
		if candidate := hostport[i+1:]; allDigits(candidate) {
			host, port = hostport[:i], candidate
		}
	}
	return userinfo, hasUserinfo, host, port
}

// validateHost checks the host part for structural validity. A bracketed
// host must be a well-formed IP literal; a registered name is only checked
// for characters the authority grammar forbids. An empty host is valid and
// represents an explicit empty authority.
func validateHost(host string, offset int) error {
	if !strings.HasPrefix(host, "[") {
		return checkAuthorityChars(host, offset)
	}
	end := strings.LastIndex(host, "]")
	if end == -1 {
		return newParseError(KindInvalidAuthority, offset, "unterminated IP literal")
	}
	if end != len(host)-1 {
		return newParseError(KindInvalidAuthority, offset+end+1,
			fmt.Sprintf("unexpected characters after IP literal %q", host[:end+1]))
	}
	return validateIPLiteral(host[1:end], offset+1)
}

// validateIPLiteral checks a string inside brackets as an IPv6 or IPvFuture
// address.
func validateIPLiteral(literal string, offset int) error {
	if strings.HasPrefix(literal, "v") || strings.HasPrefix(literal, "V") {
		return validateIPvFuture(literal, offset)
	}
	if net.ParseIP(literal) == nil {
		return newParseError(KindInvalidAuthority, offset,
			fmt.Sprintf("invalid IP literal %q", literal))
	}
	return nil
}

// validateIPvFuture validates an IPvFuture literal (e.g., "v1.something")
// per the grammar "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func validateIPvFuture(literal string, offset int) error {
	parts := strings.SplitN(literal[1:], ".", ipvFutureParts)
	if len(parts) != ipvFutureParts {
		return newParseError(KindInvalidAuthority, offset,
			fmt.Sprintf("IPvFuture literal %q has no dot separator", literal))
	}
	version, address := parts[0], parts[1]
	if version == "" {
		return newParseError(KindInvalidAuthority, offset,
			fmt.Sprintf("IPvFuture literal %q is missing a version", literal))
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return newParseError(KindInvalidAuthority, offset,
				fmt.Sprintf("invalid IPvFuture version character %q", r))
		}
	}
	if address == "" {
		return newParseError(KindInvalidAuthority, offset,
			fmt.Sprintf("IPvFuture literal %q has an empty address", literal))
	}
	for _, r := range address {
		if !isUnreservedOrSubDelims(r) && r != ':' {
			return newParseError(KindInvalidAuthority, offset,
				fmt.Sprintf("invalid IPvFuture address character %q", r))
		}
	}
	return nil
}

// checkAuthorityChars rejects whitespace and control characters, which the
// authority grammar forbids. All other characters, percent-escapes included,
// pass through verbatim.
func checkAuthorityChars(s string, offset int) error {
	for i, r := range s {
		if r == ' ' || unicode.IsControl(r) {
			return newParseError(KindInvalidCharacter, offset+i,
				fmt.Sprintf("character %q is not allowed in the authority", r))
		}
	}
	return nil
}

// checkPort validates a non-empty port candidate: all ASCII digits and
// within the valid port range.
func checkPort(port string, offset int) error {
	for i, r := range port {
		if !isASCIIDigit(r) {
			return newParseError(KindInvalidPort, offset+i,
				fmt.Sprintf("invalid port character %q", r))
		}
	}
	n, err := strconv.ParseUint(port, 10, 64)
	if err != nil || n > maxPort {
		return newParseError(KindInvalidPort, offset,
			fmt.Sprintf("port %s is outside the valid range 0-%d", port, maxPort))
	}
	return nil
}
