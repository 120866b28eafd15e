package mrt

import (
	"net/netip"

	"github.com/route-beacon/bgp-models/pkg/bgp"
	"github.com/route-beacon/bgp-models/pkg/network"
)

// TableDump is a legacy TABLE_DUMP RIB row (RFC 6396 §4.2): one prefix as
// seen from one peer. The record subtype is the AFI; the ASN width of the
// encoded attributes is fixed at 2 octets for this type.
type TableDump struct {
	ViewNumber     uint16
	SequenceNumber uint16
	Prefix         network.Prefix
	Status         uint8
	OriginatedTime uint32
	PeerAddress    netip.Addr
	PeerASN        network.ASN
	Attributes     bgp.AttributeSet
}

func (TableDump) body() {}

// TABLE_DUMP_V2 subtype codes (RFC 6396 §4.3, RFC 6397, RFC 8050).
type TableDumpV2Subtype uint16

const (
	SubtypePeerIndexTable          TableDumpV2Subtype = 1
	SubtypeRIBIPv4Unicast          TableDumpV2Subtype = 2
	SubtypeRIBIPv4Multicast        TableDumpV2Subtype = 3
	SubtypeRIBIPv6Unicast          TableDumpV2Subtype = 4
	SubtypeRIBIPv6Multicast        TableDumpV2Subtype = 5
	SubtypeRIBGeneric              TableDumpV2Subtype = 6
	SubtypeGeoPeerTable            TableDumpV2Subtype = 7
	SubtypeRIBIPv4UnicastAddPath   TableDumpV2Subtype = 8
	SubtypeRIBIPv4MulticastAddPath TableDumpV2Subtype = 9
	SubtypeRIBIPv6UnicastAddPath   TableDumpV2Subtype = 10
	SubtypeRIBIPv6MulticastAddPath TableDumpV2Subtype = 11
	SubtypeRIBGenericAddPath       TableDumpV2Subtype = 12
)

// IsAddPath reports whether the subtype carries per-entry path identifiers
// (RFC 8050).
func (s TableDumpV2Subtype) IsAddPath() bool {
	return s >= SubtypeRIBIPv4UnicastAddPath && s <= SubtypeRIBGenericAddPath
}

// Peer type flags from the PEER_INDEX_TABLE (RFC 6396 §4.3.1).
const (
	PeerTypeIPv6 uint8 = 0x01 // peer address is IPv6
	PeerTypeAS4  uint8 = 0x02 // peer ASN encoded in 4 octets
)

// Peer is one entry of a PEER_INDEX_TABLE.
type Peer struct {
	Type    uint8
	BGPID   netip.Addr
	Address netip.Addr
	ASN     network.ASN
}

// ASNLength returns the encoding width the peer's type flags declare for
// its AS number.
func (p Peer) ASNLength() network.ASNLength {
	if p.Type&PeerTypeAS4 != 0 {
		return network.ASNLength32
	}
	return network.ASNLength16
}

// PeerIndexTable is the TABLE_DUMP_V2 peer index (subtype 1). RIB entries
// later in the same MRT stream reference peers by position in Peers; the
// table must be fully constructed and published before any reader
// dereferences those indices.
type PeerIndexTable struct {
	CollectorBGPID netip.Addr
	ViewName       string
	Peers          []Peer
}

func (PeerIndexTable) body() {}

// RIBEntry is one peer's view of a prefix inside a TABLE_DUMP_V2 RIB
// record. PeerIndex is a zero-based position in the stream's
// PEER_INDEX_TABLE, stored as a plain integer: the table's lifetime is
// managed by the decoding pipeline, and range-checking the index is the
// decoder's responsibility, not the model's.
type RIBEntry struct {
	PeerIndex      uint16
	OriginatedTime uint32
	PathID         uint32 // set only for ADD-PATH subtypes
	Attributes     bgp.AttributeSet
}

// RIBAfiEntries is a TABLE_DUMP_V2 RIB record for one of the fixed
// AFI/SAFI subtypes (IPv4/IPv6 unicast/multicast, ADD-PATH or not). The
// subtype is kept so the address family and ADD-PATH form stay explicit.
type RIBAfiEntries struct {
	Subtype        TableDumpV2Subtype
	SequenceNumber uint32
	Prefix         network.Prefix
	Entries        []RIBEntry
}

func (RIBAfiEntries) body() {}

// RIBGenericEntries is a RIB_GENERIC record: like RIBAfiEntries but with
// the AFI and SAFI carried in the record itself, covering address families
// the fixed subtypes cannot. Unrecognized AFI/SAFI codes are stored as-is.
type RIBGenericEntries struct {
	SequenceNumber uint32
	AFI            network.AFI
	SAFI           network.SAFI
	NLRI           network.Prefix
	Entries        []RIBEntry
}

func (RIBGenericEntries) body() {}

// GeoPeer is one entry of a GEO_PEER_TABLE (RFC 6397).
type GeoPeer struct {
	Type      uint8
	BGPID     netip.Addr
	Latitude  float32
	Longitude float32
}

// GeoPeerTable is the TABLE_DUMP_V2 geo-location peer table (subtype 7).
type GeoPeerTable struct {
	CollectorBGPID     netip.Addr
	CollectorLatitude  float32
	CollectorLongitude float32
	Peers              []GeoPeer
}

func (GeoPeerTable) body() {}
