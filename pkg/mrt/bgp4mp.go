package mrt

import (
	"net/netip"
	"strconv"

	"github.com/route-beacon/bgp-models/pkg/bgp"
	"github.com/route-beacon/bgp-models/pkg/network"
)

// BGP4MP subtype codes (RFC 6396 §4.4, RFC 8050).
type BGP4MPSubtype uint16

const (
	SubtypeStateChange            BGP4MPSubtype = 0
	SubtypeMessage                BGP4MPSubtype = 1
	SubtypeMessageAS4             BGP4MPSubtype = 4
	SubtypeStateChangeAS4         BGP4MPSubtype = 5
	SubtypeMessageLocal           BGP4MPSubtype = 6
	SubtypeMessageAS4Local        BGP4MPSubtype = 7
	SubtypeMessageAddPath         BGP4MPSubtype = 8
	SubtypeMessageAS4AddPath      BGP4MPSubtype = 9
	SubtypeMessageLocalAddPath    BGP4MPSubtype = 10
	SubtypeMessageAS4LocalAddPath BGP4MPSubtype = 11
)

// BGPState is a BGP finite state machine state (RFC 4271 §8).
type BGPState uint16

const (
	StateIdle        BGPState = 1
	StateConnect     BGPState = 2
	StateActive      BGPState = 3
	StateOpenSent    BGPState = 4
	StateOpenConfirm BGPState = 5
	StateEstablished BGPState = 6
)

func (s BGPState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConnect:
		return "Connect"
	case StateActive:
		return "Active"
	case StateOpenSent:
		return "OpenSent"
	case StateOpenConfirm:
		return "OpenConfirm"
	case StateEstablished:
		return "Established"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// StateChange is a BGP4MP STATE_CHANGE or STATE_CHANGE_AS4 record: a peer
// FSM transition. ASNLen is the explicit width tag of the record's AS
// number fields; legacy records are 2-octet, _AS4 records 4-octet. The tag
// is part of the value and is never inferred from anything else.
type StateChange struct {
	ASNLen         network.ASNLength
	PeerASN        network.ASN
	LocalASN       network.ASN
	InterfaceIndex uint16
	AFI            network.AFI
	PeerAddress    netip.Addr
	LocalAddress   netip.Addr
	OldState       BGPState
	NewState       BGPState
}

func (StateChange) body() {}

// Subtype returns the BGP4MP subtype the record's tags correspond to.
func (c StateChange) Subtype() BGP4MPSubtype {
	if c.ASNLen == network.ASNLength32 {
		return SubtypeStateChangeAS4
	}
	return SubtypeStateChange
}

// BGP4MPMessage is a BGP4MP MESSAGE-family record: one BGP message
// exchanged with a peer. ASNLen tags the AS number width exactly as in
// StateChange; Local marks the *_LOCAL subtypes (message emitted by the
// collector itself) and AddPath the RFC 8050 subtypes.
type BGP4MPMessage struct {
	ASNLen         network.ASNLength
	Local          bool
	AddPath        bool
	PeerASN        network.ASN
	LocalASN       network.ASN
	InterfaceIndex uint16
	AFI            network.AFI
	PeerAddress    netip.Addr
	LocalAddress   netip.Addr
	Message        bgp.Message
}

func (BGP4MPMessage) body() {}

// Subtype returns the BGP4MP subtype the record's tags correspond to.
func (m BGP4MPMessage) Subtype() BGP4MPSubtype {
	as4 := m.ASNLen == network.ASNLength32
	switch {
	case m.AddPath && m.Local && as4:
		return SubtypeMessageAS4LocalAddPath
	case m.AddPath && m.Local:
		return SubtypeMessageLocalAddPath
	case m.AddPath && as4:
		return SubtypeMessageAS4AddPath
	case m.AddPath:
		return SubtypeMessageAddPath
	case m.Local && as4:
		return SubtypeMessageAS4Local
	case m.Local:
		return SubtypeMessageLocal
	case as4:
		return SubtypeMessageAS4
	default:
		return SubtypeMessage
	}
}
