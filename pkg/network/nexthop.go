package network

import "net/netip"

// NextHop is a next-hop address from a BGP UPDATE. MP_REACH_NLRI for IPv6
// may carry two addresses, a global one and a link-local one (RFC 2545);
// LinkLocal is the zero Addr when only the global address is present.
type NextHop struct {
	Addr      netip.Addr
	LinkLocal netip.Addr
}

// NextHopFrom builds a single-address next hop.
func NextHopFrom(addr netip.Addr) NextHop {
	return NextHop{Addr: addr}
}

// NextHopWithLinkLocal builds an IPv6 next hop carrying both the global and
// the link-local address.
func NextHopWithLinkLocal(global, linkLocal netip.Addr) NextHop {
	return NextHop{Addr: global, LinkLocal: linkLocal}
}

// HasLinkLocal reports whether a link-local companion address is present.
func (n NextHop) HasLinkLocal() bool {
	return n.LinkLocal.IsValid()
}

// String returns the global address; the link-local companion is not part
// of the canonical text form.
func (n NextHop) String() string {
	return n.Addr.String()
}
