// Package mrt defines the in-memory shapes of MRT records (RFC 6396,
// RFC 8050): the common header envelope and the TABLE_DUMP, TABLE_DUMP_V2
// and BGP4MP payload families, wrapping the BGP model from pkg/bgp.
//
// Like the rest of the module, this is a value vocabulary. Records are
// built fully formed by an external decoder; framing, length checks and
// byte parsing live there, not here.
package mrt

import "strconv"

// EntryType is the MRT record type (RFC 6396 §4, plus the types it
// deprecates from earlier MRT revisions).
type EntryType uint16

const (
	TypeNull        EntryType = 0  // deprecated
	TypeStart       EntryType = 1  // deprecated
	TypeDie         EntryType = 2  // deprecated
	TypeIAmDead     EntryType = 3  // deprecated
	TypePeerDown    EntryType = 4  // deprecated
	TypeBGP         EntryType = 5  // deprecated
	TypeRIP         EntryType = 6  // deprecated
	TypeIDRP        EntryType = 7  // deprecated
	TypeRIPNG       EntryType = 8  // deprecated
	TypeBGP4Plus    EntryType = 9  // deprecated
	TypeBGP4Plus01  EntryType = 10 // deprecated
	TypeOSPFv2      EntryType = 11
	TypeTableDump   EntryType = 12
	TypeTableDumpV2 EntryType = 13
	TypeBGP4MP      EntryType = 16
	TypeBGP4MPET    EntryType = 17
	TypeISIS        EntryType = 32
	TypeISISET      EntryType = 33
	TypeOSPFv3      EntryType = 48
	TypeOSPFv3ET    EntryType = 49
)

var entryTypeNames = map[EntryType]string{
	TypeNull:        "NULL",
	TypeStart:       "START",
	TypeDie:         "DIE",
	TypeIAmDead:     "I_AM_DEAD",
	TypePeerDown:    "PEER_DOWN",
	TypeBGP:         "BGP",
	TypeRIP:         "RIP",
	TypeIDRP:        "IDRP",
	TypeRIPNG:       "RIPNG",
	TypeBGP4Plus:    "BGP4PLUS",
	TypeBGP4Plus01:  "BGP4PLUS_01",
	TypeOSPFv2:      "OSPFv2",
	TypeTableDump:   "TABLE_DUMP",
	TypeTableDumpV2: "TABLE_DUMP_V2",
	TypeBGP4MP:      "BGP4MP",
	TypeBGP4MPET:    "BGP4MP_ET",
	TypeISIS:        "ISIS",
	TypeISISET:      "ISIS_ET",
	TypeOSPFv3:      "OSPFv3",
	TypeOSPFv3ET:    "OSPFv3_ET",
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return "TYPE(" + strconv.Itoa(int(t)) + ")"
}

// HasExtendedTimestamp reports whether records of this type carry the
// microsecond timestamp extension.
func (t EntryType) HasExtendedTimestamp() bool {
	switch t {
	case TypeBGP4MPET, TypeISISET, TypeOSPFv3ET:
		return true
	default:
		return false
	}
}

// Header is the MRT common header: seconds timestamp, type, subtype and
// the declared body length in octets. Microseconds is set only for the
// extended-timestamp (_ET) record types.
type Header struct {
	Timestamp    uint32
	Microseconds *uint32
	Type         EntryType
	Subtype      uint16
	Length       uint32
}

// Record is one MRT record: the common header plus a body whose concrete
// type follows from the header's type and subtype. Decoders must construct
// the body matching the header; the model does not cross-check the pair.
type Record struct {
	Header Header
	Body   Body
}

// Body is an MRT record payload. Concrete bodies in this package cover
// TABLE_DUMP, TABLE_DUMP_V2 and BGP4MP; every other (type, subtype) pair
// degrades to Unsupported rather than being rejected.
type Body interface {
	body()
}

// Unsupported carries the raw body of any record the model has no concrete
// shape for (OSPF, ISIS, deprecated types, unknown subtypes). Type and
// Subtype repeat the header values so the record stays self-describing.
type Unsupported struct {
	Type    EntryType
	Subtype uint16
	Data    []byte
}

func (Unsupported) body() {}
