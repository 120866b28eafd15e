package bgp

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-beacon/bgp-models/pkg/network"
)

func TestAttributeSet_OrderPreserved(t *testing.T) {
	set := AttributeSet{
		OriginIGP,
		ASPathAttribute{Sequence(64496, 64497)},
		NextHop{Addr: netip.MustParseAddr("192.0.2.1")},
	}

	want := []AttrType{AttrTypeOrigin, AttrTypeASPath, AttrTypeNextHop}
	assert.Equal(t, want, set.Types())

	// Reading individual attributes does not disturb the order.
	_, ok := set.Get(AttrTypeASPath)
	require.True(t, ok)
	assert.Equal(t, want, set.Types())
}

func TestAttributeSet_Get(t *testing.T) {
	set := AttributeSet{
		OriginIncomplete,
		MultiExitDisc(50),
		LocalPref(200),
	}

	attr, ok := set.Get(AttrTypeLocalPref)
	require.True(t, ok)
	assert.Equal(t, LocalPref(200), attr)

	_, ok = set.Get(AttrTypeAggregator)
	assert.False(t, ok)
	assert.True(t, set.Has(AttrTypeMultiExitDisc))
}

func TestAttribute_FieldRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		attr PathAttribute
		typ  AttrType
	}{
		{name: "origin", attr: OriginEGP, typ: AttrTypeOrigin},
		{name: "as path", attr: ASPathAttribute{Sequence(1, 2)}, typ: AttrTypeASPath},
		{name: "as4 path", attr: AS4PathAttribute{Sequence(70000)}, typ: AttrTypeAS4Path},
		{name: "next hop", attr: NextHop{Addr: netip.MustParseAddr("10.0.0.1")}, typ: AttrTypeNextHop},
		{name: "med", attr: MultiExitDisc(10), typ: AttrTypeMultiExitDisc},
		{name: "local pref", attr: LocalPref(100), typ: AttrTypeLocalPref},
		{name: "atomic aggregate", attr: Aggregate, typ: AttrTypeAtomicAggregate},
		{
			name: "aggregator",
			attr: Aggregator{ASN: 64496, Addr: netip.MustParseAddr("192.0.2.1")},
			typ:  AttrTypeAggregator,
		},
		{
			name: "as4 aggregator",
			attr: AS4Aggregator{ASN: 70000, Addr: netip.MustParseAddr("192.0.2.1")},
			typ:  AttrTypeAS4Aggregator,
		},
		{name: "communities", attr: Communities{CommunityFrom(64496, 1)}, typ: AttrTypeCommunities},
		{
			name: "extended communities",
			attr: ExtendedCommunities{NewExtendedCommunity(0x00, 0x02, [6]byte{})},
			typ:  AttrTypeExtendedCommunities,
		},
		{name: "large communities", attr: LargeCommunities{NewLargeCommunity(1, 2, 3)}, typ: AttrTypeLargeCommunities},
		{name: "originator id", attr: OriginatorID{Addr: netip.MustParseAddr("10.0.0.1")}, typ: AttrTypeOriginatorID},
		{name: "cluster list", attr: ClusterList{netip.MustParseAddr("10.0.0.1")}, typ: AttrTypeClusterList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.attr.AttrType())
		})
	}
}

func TestASPathAndAS4PathStayIndependent(t *testing.T) {
	// RFC 6793 reconciliation belongs to consumers; the set exposes both
	// attributes untouched.
	asPath := ASPathAttribute{Sequence(23456, 64497)}
	as4Path := AS4PathAttribute{Sequence(70000, 64497)}
	set := AttributeSet{asPath, as4Path}

	got2, ok := set.Get(AttrTypeASPath)
	require.True(t, ok)
	assert.Equal(t, asPath, got2)

	got4, ok := set.Get(AttrTypeAS4Path)
	require.True(t, ok)
	assert.Equal(t, as4Path, got4)
}

func TestMPReachNLRI(t *testing.T) {
	nlri := MPReachNLRI{
		AFI:     network.AFIIPv6,
		SAFI:    network.SAFIUnicast,
		NextHop: network.NextHopFrom(netip.MustParseAddr("2001:db8::1")),
		Prefixes: []network.Prefix{
			network.MustParsePrefix("2001:db8:1::/48"),
			network.MustParsePrefix("2001:db8:2::/48"),
		},
	}

	assert.Equal(t, AttrTypeMPReachNLRI, nlri.AttrType())
	assert.Equal(t, network.AFIIPv6, nlri.AFI)
	require.Len(t, nlri.Prefixes, 2)
	assert.Equal(t, "2001:db8:1::/48", nlri.Prefixes[0].String())
}

func TestMPReachNLRI_UnknownFamilyKeptOpaque(t *testing.T) {
	// AFI 25 (L2VPN) is not a family this model decodes prefixes for; the
	// raw codes and payload must survive regardless.
	raw := []byte{0x01, 0x02, 0x03}
	nlri := MPReachNLRI{AFI: 25, SAFI: 65, Opaque: raw}

	assert.Equal(t, network.AFI(25), nlri.AFI)
	assert.Equal(t, network.SAFI(65), nlri.SAFI)
	assert.Empty(t, nlri.Prefixes)
	assert.Equal(t, raw, nlri.Opaque)

	unreach := MPUnreachNLRI{AFI: 25, SAFI: 65, Opaque: raw}
	assert.Equal(t, AttrTypeMPUnreachNLRI, unreach.AttrType())
	assert.Equal(t, raw, unreach.Opaque)
}

func TestUnknownAttribute_RoundTrip(t *testing.T) {
	raw := []byte{0xCA, 0xFE}
	attr := UnknownAttribute{TypeCode: 99, Flags: AttrFlagOptional | AttrFlagTransitive, Value: raw}

	assert.Equal(t, AttrType(99), attr.AttrType())
	assert.Equal(t, raw, attr.Value)
	assert.True(t, attr.Flags.Optional())
	assert.True(t, attr.Flags.Transitive())
	assert.False(t, attr.Flags.Partial())

	// Unknown attributes participate in sets like any other.
	set := AttributeSet{OriginIGP, attr}
	got, ok := set.Get(AttrType(99))
	require.True(t, ok)
	assert.Equal(t, attr, got)
}

func TestAttrFlags(t *testing.T) {
	f := AttrFlagOptional | AttrFlagExtendedLength
	assert.True(t, f.Optional())
	assert.False(t, f.Transitive())
	assert.False(t, f.Partial())
	assert.True(t, f.ExtendedLength())
}

func TestAttrType_String(t *testing.T) {
	assert.Equal(t, "ORIGIN", AttrTypeOrigin.String())
	assert.Equal(t, "LARGE_COMMUNITIES", AttrTypeLargeCommunities.String())
	assert.Equal(t, "ATTRIBUTE(99)", AttrType(99).String())
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "IGP", OriginIGP.String())
	assert.Equal(t, "EGP", OriginEGP.String())
	assert.Equal(t, "INCOMPLETE", OriginIncomplete.String())
	assert.Equal(t, "ORIGIN(7)", Origin(7).String())
}
