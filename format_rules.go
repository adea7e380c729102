package formcheck

import (
	"net"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// urlSchemes are the schemes the url rule accepts.
var urlSchemes = []string{"http", "https", "ftp"}

// validateEmail parses with Go's mail parser and then applies the checks
// typical web forms expect: a non-empty local part and a dot-separated domain
// with no empty segments.
func validateEmail(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func validateURL(_ *Validator, _ string, value any, _ Params) bool {
	u, ok := parseURL(value)
	return ok && u != nil
}

// validateURLActive additionally requires the URL's host to resolve in DNS,
// by address or MX record. This is the one builtin that performs blocking
// network I/O.
func validateURLActive(_ *Validator, _ string, value any, _ Params) bool {
	u, ok := parseURL(value)
	if !ok {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	return hostResolves(host)
}

// hostResolves is a variable so tests can avoid live DNS.
var hostResolves = func(host string) bool {
	if addrs, err := net.LookupHost(host); err == nil && len(addrs) > 0 {
		return true
	}
	if mxs, err := net.LookupMX(host); err == nil && len(mxs) > 0 {
		return true
	}
	return false
}

func parseURL(value any) (*url.URL, bool) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return nil, false
	}
	if u.Host == "" || !slices.Contains(urlSchemes, u.Scheme) {
		return nil, false
	}
	return u, true
}

// validateIP accepts both IPv4 and IPv6 textual addresses.
func validateIP(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	return ok && net.ParseIP(s) != nil
}

// validateUUID checks the canonical 36-character form, with a fast rejection
// on length and hyphen positions before parsing.
func validateUUID(_ *Validator, _ string, value any, _ Params) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
