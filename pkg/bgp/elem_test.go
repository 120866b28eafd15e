package bgp

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/route-beacon/bgp-models/pkg/network"
)

func uint32p(v uint32) *uint32 { return &v }

func TestElem_String_Announce(t *testing.T) {
	path := Sequence(64496, 64497)
	origin := OriginIGP
	atomic := NotAggregate
	aggrASN := network.ASN(64497)

	e := &Elem{
		Timestamp: 1638316800.5,
		Type:      ElemAnnounce,
		PeerIP:    netip.MustParseAddr("192.0.2.1"),
		PeerASN:   64496,
		Prefix:    network.MustParsePrefix("10.0.0.0/24"),
		NextHop:   netip.MustParseAddr("192.0.2.254"),
		ASPath:    &path,
		Origin:    &origin,
		LocalPref: uint32p(100),
		MED:       uint32p(50),
		Commun:    []Community{CommunityFrom(64496, 100), CommunityNoExport},
		Atomic:    &atomic,
		AggrASN:   &aggrASN,
		AggrIP:    netip.MustParseAddr("192.0.2.2"),
	}

	want := "A|1638316800.5|192.0.2.1|64496|10.0.0.0/24|64496 64497|IGP|192.0.2.254|100|50|64496:100 no-export|NAG|64497|192.0.2.2"
	assert.Equal(t, want, e.String())
}

func TestElem_String_WithdrawOmitsAttributes(t *testing.T) {
	e := &Elem{
		Timestamp: 1638316800,
		Type:      ElemWithdraw,
		PeerIP:    netip.MustParseAddr("2001:db8::1"),
		PeerASN:   70000,
		Prefix:    network.MustParsePrefix("2001:db8:1::/48"),
	}

	// Absent fields are empty, not omitted; the field count is fixed.
	want := "W|1638316800|2001:db8::1|70000|2001:db8:1::/48|||||||||"
	assert.Equal(t, want, e.String())
}

func TestElemType(t *testing.T) {
	assert.Equal(t, "A", ElemAnnounce.String())
	assert.Equal(t, "W", ElemWithdraw.String())

	b, err := ElemWithdraw.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"W"`, string(b))
}
