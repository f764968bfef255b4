package rpc

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ErrInvalidTarget is wrapped by every error ValidateTarget returns.
var ErrInvalidTarget = errors.New("rpc: invalid target")

// ValidateTarget checks that addr is a plain host[:port] dial target: a
// dotted IPv4 address, a domain name, or a bracketed IPv6 literal, with an
// optional port in [0, 65535). Schemes and paths are rejected, so resolver
// URIs such as "dns:///host" must be dialed through grpc directly.
func ValidateTarget(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidTarget)
	}
	if strings.Contains(addr, "://") {
		return fmt.Errorf("%w: %q: scheme is not allowed", ErrInvalidTarget, addr)
	}
	if strings.Contains(addr, "/") {
		return fmt.Errorf("%w: %q: path must be empty", ErrInvalidTarget, addr)
	}

	host, port, err := splitTarget(addr)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidTarget, addr, err)
	}
	if port != "" {
		if err := validatePort(port); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidTarget, addr, err)
		}
	}
	if strings.HasPrefix(host, "[") {
		return nil
	}
	if isNumericHost(host) {
		err = validateIPv4(host)
	} else {
		err = validateDomain(host)
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidTarget, addr, err)
	}
	return nil
}

// splitTarget separates host and port. The port is empty when addr has none.
func splitTarget(addr string) (host, port string, err error) {
	if strings.HasPrefix(addr, "[") {
		end := strings.IndexByte(addr, ']')
		if end < 0 {
			return "", "", errors.New("missing ']' in IPv6 literal")
		}
		ip, err := netip.ParseAddr(addr[1:end])
		if err != nil || !ip.Is6() {
			return "", "", fmt.Errorf("bad IPv6 literal %q", addr[1:end])
		}
		rest := addr[end+1:]
		switch {
		case rest == "":
			return addr[:end+1], "", nil
		case rest[0] == ':':
			if rest == ":" {
				return "", "", errors.New("empty port")
			}
			return addr[:end+1], rest[1:], nil
		default:
			return "", "", fmt.Errorf("unexpected %q after IPv6 literal", rest)
		}
	}

	i := strings.LastIndexByte(addr, ':')
	if i < 0 {
		return addr, "", nil
	}
	host, port = addr[:i], addr[i+1:]
	if host == "" {
		return "", "", errors.New("empty host")
	}
	if port == "" {
		return "", "", errors.New("empty port")
	}
	return host, port, nil
}

func validatePort(port string) error {
	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", port)
	}
	if p < 0 || p >= 65535 {
		return fmt.Errorf("port %d out of range [0, 65535)", p)
	}
	return nil
}

func isNumericHost(host string) bool {
	for i := 0; i < len(host); i++ {
		if c := host[i]; c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func validateIPv4(host string) error {
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return fmt.Errorf("IPv4 address %q must have 4 octets", host)
	}
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil {
			return fmt.Errorf("bad octet %q in %q", o, host)
		}
		if n > 255 {
			return fmt.Errorf("octet %d in %q out of range [0, 255]", n, host)
		}
	}
	return nil
}

func validateDomain(host string) error {
	for _, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
		default:
			return fmt.Errorf("character %q not allowed in domain %q", r, host)
		}
	}
	return nil
}
