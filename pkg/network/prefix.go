package network

import (
	"fmt"
	"net/netip"
)

// Prefix is an IP prefix announced or withdrawn by BGP, with the optional
// ADD-PATH path identifier from RFC 7911 (0 when the session does not carry
// path IDs).
type Prefix struct {
	Prefix netip.Prefix
	PathID uint32
}

// NewPrefix builds a prefix from an address and a length. The length must
// not exceed the bit width of the address family (32 for IPv4, 128 for
// IPv6); otherwise InvalidPrefixLengthError is returned.
func NewPrefix(addr netip.Addr, length int, pathID uint32) (Prefix, error) {
	if !addr.IsValid() || length < 0 || length > addr.BitLen() {
		return Prefix{}, &InvalidPrefixLengthError{Addr: addr, Length: length}
	}
	return Prefix{Prefix: netip.PrefixFrom(addr, length), PathID: pathID}, nil
}

// ParsePrefix parses a prefix in CIDR notation, e.g. "10.0.0.0/24". The
// path ID of the result is 0.
func ParsePrefix(s string) (Prefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return Prefix{}, fmt.Errorf("network: parse prefix %q: %w", s, err)
	}
	return Prefix{Prefix: p}, nil
}

// MustParsePrefix is ParsePrefix that panics on error, for tests and
// static tables.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Prefix) String() string {
	return p.Prefix.String()
}

// MarshalJSON renders the prefix in CIDR notation. The path ID is carried
// separately by whichever record owns the prefix.
func (p Prefix) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Prefix.String() + `"`), nil
}
