// Package bgp defines the in-memory shapes of BGP messages, path
// attributes and community values, as laid out by RFC 4271 (BGP-4),
// RFC 6793 (4-octet AS numbers), RFC 1997/4360/5668/5701/7153/8092/8097
// (community families) and RFC 4760 (multiprotocol NLRI).
//
// The package is a value vocabulary only. Wire encoding and decoding belong
// to an external codec; entities here are constructed fully formed from
// already-decoded fields and are immutable afterwards.
package bgp

import (
	"fmt"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// Community is a classic RFC 1997 community, a 4-byte value conventionally
// read as ASN:value.
type Community uint32

// Well-known communities (RFC 1997).
const (
	CommunityNoExport          Community = 0xFFFFFF01
	CommunityNoAdvertise       Community = 0xFFFFFF02
	CommunityNoExportSubConfed Community = 0xFFFFFF03
)

// CommunityFrom builds a community from its ASN and value halves.
func CommunityFrom(asn uint16, value uint16) Community {
	return Community(uint32(asn)<<16 | uint32(value))
}

// ASN returns the high 16 bits, the AS number half.
func (c Community) ASN() network.ASN {
	return network.ASN(uint32(c) >> 16)
}

// Value returns the low 16 bits.
func (c Community) Value() uint16 {
	return uint16(c)
}

// String renders the canonical name of a well-known community, or the
// "asn:value" form otherwise.
func (c Community) String() string {
	switch c {
	case CommunityNoExport:
		return "no-export"
	case CommunityNoAdvertise:
		return "no-advertise"
	case CommunityNoExportSubConfed:
		return "no-export-sub-confed"
	default:
		return fmt.Sprintf("%d:%d", uint32(c)>>16, uint16(c))
	}
}

func (c Community) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// LargeCommunity is an RFC 8092 large community: three 4-byte fields with
// no sub-typing.
type LargeCommunity struct {
	GlobalAdministrator uint32
	LocalData           [2]uint32
}

// NewLargeCommunity builds a large community from its three fields.
func NewLargeCommunity(globalAdmin, data1, data2 uint32) LargeCommunity {
	return LargeCommunity{
		GlobalAdministrator: globalAdmin,
		LocalData:           [2]uint32{data1, data2},
	}
}

func (c LargeCommunity) String() string {
	return fmt.Sprintf("%d:%d:%d", c.GlobalAdministrator, c.LocalData[0], c.LocalData[1])
}

func (c LargeCommunity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
