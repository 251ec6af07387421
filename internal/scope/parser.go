package scope

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strings"
)

// ExpandOptions control which boundary addresses a CIDR entry contributes.
// They never affect ranges or single addresses.
type ExpandOptions struct {
	// IncludeNetwork adds a block's base address.
	IncludeNetwork bool
	// IncludeBroadcast adds a block's top address.
	IncludeBroadcast bool
}

// Entry kinds reported by LineError.
const (
	KindRange   = "range"
	KindAddress = "address"
	KindNetwork = "network"
	KindLine    = "line"
)

// LineError reports a scope entry that could not be parsed. It is a warning:
// the entry is skipped and the rest of the input is still used.
type LineError struct {
	Kind  string
	Entry string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("failed to parse %s %q: %v", e.Kind, e.Entry, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsComment reports whether a trimmed line carries no scope entry.
func IsComment(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// ParseLine converts one scope entry into the addresses it names.
//
// Accepted forms are "start-end" (inclusive), "a.b.c.d/n", "a.b.c.d/netmask"
// and a bare "a.b.c.d". Blank lines and lines starting with "#" or "//"
// yield nothing. A malformed entry yields nothing and a *LineError.
func ParseLine(line string, opts ExpandOptions) ([]Addr, error) {
	line = strings.TrimSpace(line)
	if IsComment(line) {
		return nil, nil
	}

	if strings.Contains(line, "-") {
		return parseRange(line)
	}

	prefix, err := parseNetwork(line)
	if err != nil {
		a, addrErr := ParseAddr(line)
		if addrErr != nil {
			return nil, &LineError{Kind: KindAddress, Entry: line, Err: err}
		}
		return []Addr{a}, nil
	}

	return expandPrefix(prefix, opts), nil
}

// parseRange expands "start-end". A reversed range is empty, not an error.
func parseRange(line string) ([]Addr, error) {
	parts := strings.Split(line, "-")
	if len(parts) != 2 {
		return nil, &LineError{Kind: KindRange, Entry: line, Err: fmt.Errorf("expected exactly one '-', found %d", len(parts)-1)}
	}

	start, err := ParseAddr(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, &LineError{Kind: KindRange, Entry: line, Err: err}
	}
	end, err := ParseAddr(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, &LineError{Kind: KindRange, Entry: line, Err: err}
	}

	if start > end {
		return nil, nil
	}
	return span(uint64(start), uint64(end)), nil
}

// parseNetwork parses a CIDR entry without requiring host bits to be zero.
// A bare address is a /32. The suffix may also be a dotted netmask or hostmask.
func parseNetwork(s string) (netip.Prefix, error) {
	addrPart, maskPart, hasMask := strings.Cut(s, "/")
	if !hasMask {
		a, err := ParseAddr(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return netip.PrefixFrom(a.Netip(), 32), nil
	}

	if strings.Contains(maskPart, ".") {
		a, err := ParseAddr(addrPart)
		if err != nil {
			return netip.Prefix{}, err
		}
		n, err := maskBits(maskPart)
		if err != nil {
			return netip.Prefix{}, err
		}
		return netip.PrefixFrom(a.Netip(), n).Masked(), nil
	}

	a, err := ParseAddr(addrPart)
	if err != nil {
		return netip.Prefix{}, err
	}
	n, err := prefixBits(maskPart)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(a.Netip(), n).Masked(), nil
}

// prefixBits parses a decimal prefix length in [0, 32]. Leading zeros are
// allowed, so "024" is 24.
func prefixBits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing prefix length")
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid prefix length %q", s)
		}
		n = n*10 + int(c-'0')
		if n > 32 {
			return 0, fmt.Errorf("prefix length %q out of range", s)
		}
	}
	return n, nil
}

// maskBits converts a dotted netmask (255.255.255.0) or hostmask (0.0.0.255)
// into a prefix length.
func maskBits(s string) (int, error) {
	m, err := ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("invalid netmask %q: %w", s, err)
	}
	v := uint32(m)
	if ones := bits.LeadingZeros32(^v); bits.TrailingZeros32(v) == 32-ones {
		return ones, nil
	}
	if zeros := bits.LeadingZeros32(v); bits.TrailingZeros32(^v) == 32-zeros {
		return zeros, nil
	}
	return 0, fmt.Errorf("invalid netmask %q", s)
}

// expandPrefix lists the addresses of a network block. A /32 is its single
// address. Otherwise the host addresses are returned, preceded by the base
// when IncludeNetwork is set and followed by the top when IncludeBroadcast is
// set. A /31 therefore has no host addresses of its own.
func expandPrefix(p netip.Prefix, opts ExpandOptions) []Addr {
	base := uint64(AddrFrom(p.Addr()))
	if p.Bits() == 32 {
		return []Addr{Addr(base)}
	}

	last := base + (uint64(1) << (32 - p.Bits())) - 1

	out := make([]Addr, 0, last-base+1)
	if opts.IncludeNetwork {
		out = append(out, Addr(base))
	}
	if last-base >= 2 {
		out = append(out, span(base+1, last-1)...)
	}
	if opts.IncludeBroadcast {
		out = append(out, Addr(last))
	}
	return out
}

// span lists every address in [first, last].
func span(first, last uint64) []Addr {
	out := make([]Addr, 0, last-first+1)
	for v := first; v <= last; v++ {
		out = append(out, Addr(v))
	}
	return out
}
