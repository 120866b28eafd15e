package bgp

import (
	"fmt"
	"net/netip"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// AttrType is a BGP path attribute type code.
//
// https://www.iana.org/assignments/bgp-parameters/bgp-parameters.xhtml#bgp-parameters-2
type AttrType uint8

const (
	AttrTypeOrigin              AttrType = 1
	AttrTypeASPath              AttrType = 2
	AttrTypeNextHop             AttrType = 3
	AttrTypeMultiExitDisc       AttrType = 4
	AttrTypeLocalPref           AttrType = 5
	AttrTypeAtomicAggregate     AttrType = 6
	AttrTypeAggregator          AttrType = 7
	AttrTypeCommunities         AttrType = 8
	AttrTypeOriginatorID        AttrType = 9  // RFC 4456
	AttrTypeClusterList         AttrType = 10 // RFC 4456
	AttrTypeMPReachNLRI         AttrType = 14 // RFC 4760
	AttrTypeMPUnreachNLRI       AttrType = 15 // RFC 4760
	AttrTypeExtendedCommunities AttrType = 16
	AttrTypeAS4Path             AttrType = 17 // RFC 6793
	AttrTypeAS4Aggregator       AttrType = 18 // RFC 6793
	AttrTypeLargeCommunities    AttrType = 32 // RFC 8092
)

var attrTypeNames = map[AttrType]string{
	AttrTypeOrigin:              "ORIGIN",
	AttrTypeASPath:              "AS_PATH",
	AttrTypeNextHop:             "NEXT_HOP",
	AttrTypeMultiExitDisc:       "MULTI_EXIT_DISC",
	AttrTypeLocalPref:           "LOCAL_PREF",
	AttrTypeAtomicAggregate:     "ATOMIC_AGGREGATE",
	AttrTypeAggregator:          "AGGREGATOR",
	AttrTypeCommunities:         "COMMUNITIES",
	AttrTypeOriginatorID:        "ORIGINATOR_ID",
	AttrTypeClusterList:         "CLUSTER_LIST",
	AttrTypeMPReachNLRI:         "MP_REACH_NLRI",
	AttrTypeMPUnreachNLRI:       "MP_UNREACH_NLRI",
	AttrTypeExtendedCommunities: "EXTENDED_COMMUNITIES",
	AttrTypeAS4Path:             "AS4_PATH",
	AttrTypeAS4Aggregator:       "AS4_AGGREGATOR",
	AttrTypeLargeCommunities:    "LARGE_COMMUNITIES",
}

func (t AttrType) String() string {
	if name, ok := attrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ATTRIBUTE(%d)", uint8(t))
}

// AttrFlags is the attribute flags octet (RFC 4271 §4.3).
type AttrFlags uint8

const (
	AttrFlagOptional       AttrFlags = 0b10000000
	AttrFlagTransitive     AttrFlags = 0b01000000
	AttrFlagPartial        AttrFlags = 0b00100000
	AttrFlagExtendedLength AttrFlags = 0b00010000
)

func (f AttrFlags) Optional() bool       { return f&AttrFlagOptional != 0 }
func (f AttrFlags) Transitive() bool     { return f&AttrFlagTransitive != 0 }
func (f AttrFlags) Partial() bool        { return f&AttrFlagPartial != 0 }
func (f AttrFlags) ExtendedLength() bool { return f&AttrFlagExtendedLength != 0 }

// PathAttribute is one BGP UPDATE path attribute. The enumeration is open:
// consumers switch on the concrete types they care about, and any type code
// without a concrete form here is carried by UnknownAttribute so no
// information is lost.
type PathAttribute interface {
	AttrType() AttrType
}

// Origin is the ORIGIN attribute value (RFC 4271 §5.1.1).
type Origin uint8

const (
	OriginIGP        Origin = 0
	OriginEGP        Origin = 1
	OriginIncomplete Origin = 2
)

func (o Origin) AttrType() AttrType { return AttrTypeOrigin }

func (o Origin) String() string {
	switch o {
	case OriginIGP:
		return "IGP"
	case OriginEGP:
		return "EGP"
	case OriginIncomplete:
		return "INCOMPLETE"
	default:
		return fmt.Sprintf("ORIGIN(%d)", uint8(o))
	}
}

// ASPathAttribute is the AS_PATH attribute. Its ASNs may have been decoded
// from 2-octet or 4-octet encoding; either way they live in the 4-octet
// space here.
type ASPathAttribute struct {
	ASPath
}

func (a ASPathAttribute) AttrType() AttrType { return AttrTypeASPath }

// AS4PathAttribute is the AS4_PATH attribute (RFC 6793). The model keeps
// AS_PATH and AS4_PATH independent and untouched; reconciling the two is a
// downstream transformation, not part of the vocabulary.
type AS4PathAttribute struct {
	ASPath
}

func (a AS4PathAttribute) AttrType() AttrType { return AttrTypeAS4Path }

// NextHop is the NEXT_HOP attribute, an IPv4 address (RFC 4271 §5.1.3).
// IPv6 next hops travel inside MP_REACH_NLRI.
type NextHop struct {
	Addr netip.Addr
}

func (a NextHop) AttrType() AttrType { return AttrTypeNextHop }
func (a NextHop) String() string     { return a.Addr.String() }

// MultiExitDisc is the MULTI_EXIT_DISC attribute (RFC 4271 §5.1.4).
type MultiExitDisc uint32

func (a MultiExitDisc) AttrType() AttrType { return AttrTypeMultiExitDisc }

// LocalPref is the LOCAL_PREF attribute (RFC 4271 §5.1.5).
type LocalPref uint32

func (a LocalPref) AttrType() AttrType { return AttrTypeLocalPref }

// AtomicAggregate is the ATOMIC_AGGREGATE attribute (RFC 4271 §5.1.6); the
// value distinguishes aggregate from non-aggregate in flattened elements.
type AtomicAggregate uint8

const (
	NotAggregate AtomicAggregate = 0 // NAG
	Aggregate    AtomicAggregate = 1 // AG
)

func (a AtomicAggregate) AttrType() AttrType { return AttrTypeAtomicAggregate }

func (a AtomicAggregate) String() string {
	if a == NotAggregate {
		return "NAG"
	}
	return "AG"
}

// Aggregator is the AGGREGATOR attribute (RFC 4271 §5.1.7): the ASN and
// BGP identifier of the speaker that formed the aggregate.
type Aggregator struct {
	ASN  network.ASN
	Addr netip.Addr
}

func (a Aggregator) AttrType() AttrType { return AttrTypeAggregator }

// AS4Aggregator is the AS4_AGGREGATOR attribute (RFC 6793 §3).
type AS4Aggregator struct {
	ASN  network.ASN
	Addr netip.Addr
}

func (a AS4Aggregator) AttrType() AttrType { return AttrTypeAS4Aggregator }

// Communities is the COMMUNITIES attribute (RFC 1997). An empty list is a
// valid, representable state.
type Communities []Community

func (a Communities) AttrType() AttrType { return AttrTypeCommunities }

// ExtendedCommunities is the EXTENDED_COMMUNITIES attribute (RFC 4360).
type ExtendedCommunities []ExtendedCommunity

func (a ExtendedCommunities) AttrType() AttrType { return AttrTypeExtendedCommunities }

// LargeCommunities is the LARGE_COMMUNITIES attribute (RFC 8092).
type LargeCommunities []LargeCommunity

func (a LargeCommunities) AttrType() AttrType { return AttrTypeLargeCommunities }

// OriginatorID is the ORIGINATOR_ID attribute (RFC 4456).
type OriginatorID struct {
	Addr netip.Addr
}

func (a OriginatorID) AttrType() AttrType { return AttrTypeOriginatorID }

// ClusterList is the CLUSTER_LIST attribute (RFC 4456).
type ClusterList []netip.Addr

func (a ClusterList) AttrType() AttrType { return AttrTypeClusterList }

// MPReachNLRI is the MP_REACH_NLRI attribute (RFC 4760). AFI and SAFI keep
// their raw codes even when the family is not one this model decodes
// prefixes for; in that case Prefixes is empty and Opaque carries the raw
// NLRI payload so nothing is dropped.
type MPReachNLRI struct {
	AFI      network.AFI
	SAFI     network.SAFI
	NextHop  network.NextHop
	Prefixes []network.Prefix
	Opaque   []byte
}

func (a MPReachNLRI) AttrType() AttrType { return AttrTypeMPReachNLRI }

// MPUnreachNLRI is the MP_UNREACH_NLRI attribute (RFC 4760), with the same
// opaque fallback for unrecognized AFI/SAFI pairs as MPReachNLRI.
type MPUnreachNLRI struct {
	AFI      network.AFI
	SAFI     network.SAFI
	Prefixes []network.Prefix
	Opaque   []byte
}

func (a MPUnreachNLRI) AttrType() AttrType { return AttrTypeMPUnreachNLRI }

// UnknownAttribute carries an attribute whose type code has no concrete
// form in this model: the raw flags and value octets round-trip untouched.
type UnknownAttribute struct {
	TypeCode uint8
	Flags    AttrFlags
	Value    []byte
}

func (a UnknownAttribute) AttrType() AttrType { return AttrType(a.TypeCode) }

// AttributeSet is the full attribute collection of one UPDATE, in wire
// order. Order is significant for round-trip fidelity and is preserved by
// every accessor.
type AttributeSet []PathAttribute

// Get returns the first attribute with the given type code, if present.
func (s AttributeSet) Get(t AttrType) (PathAttribute, bool) {
	for _, a := range s {
		if a.AttrType() == t {
			return a, true
		}
	}
	return nil, false
}

// Has reports whether an attribute with the given type code is present.
func (s AttributeSet) Has(t AttrType) bool {
	_, ok := s.Get(t)
	return ok
}

// Types returns the attribute type codes in wire order.
func (s AttributeSet) Types() []AttrType {
	types := make([]AttrType, len(s))
	for i, a := range s {
		types[i] = a.AttrType()
	}
	return types
}
