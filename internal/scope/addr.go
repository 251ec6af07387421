package scope

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// Addr is an IPv4 host address held as its 32-bit integer value.
// Ordering Addr values orders the addresses numerically.
type Addr uint32

// ParseAddr parses a dotted-quad IPv4 address.
func ParseAddr(s string) (Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return 0, err
	}
	if !ip.Is4() {
		return 0, fmt.Errorf("%q is not an IPv4 address", s)
	}
	return AddrFrom(ip), nil
}

// MustParseAddr is ParseAddr for literals in tests and tables. It panics on error.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddrFrom converts an IPv4 netip.Addr. The result is undefined for IPv6.
func AddrFrom(ip netip.Addr) Addr {
	b := ip.As4()
	return Addr(binary.BigEndian.Uint32(b[:]))
}

// Netip returns a as a netip.Addr.
func (a Addr) Netip() netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return netip.AddrFrom4(b)
}

func (a Addr) String() string {
	return a.Netip().String()
}
