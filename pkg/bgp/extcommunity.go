package bgp

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// Extended community type octets (RFC 4360, RFC 5668, RFC 7153).
//
// Bit 1 of the type octet is the non-transitive bit; the low 6 bits select
// the structure of the 6 value octets.
const (
	ECTypeTransitiveTwoOctetAS     uint8 = 0x00
	ECTypeTransitiveIPv4Address    uint8 = 0x01
	ECTypeTransitiveFourOctetAS    uint8 = 0x02
	ECTypeTransitiveOpaque         uint8 = 0x03
	ECTypeNonTransitiveTwoOctetAS  uint8 = 0x40
	ECTypeNonTransitiveIPv4Address uint8 = 0x41
	ECTypeNonTransitiveFourOctetAS uint8 = 0x42
	ECTypeNonTransitiveOpaque      uint8 = 0x43
)

// ECSubtypeOriginValidationState is the BGP prefix origin validation state
// subtype under the non-transitive opaque type (RFC 8097).
const ECSubtypeOriginValidationState uint8 = 0x00

// ecNonTransitiveBit is bit 1 of the type octet.
const ecNonTransitiveBit uint8 = 0x40

// ExtendedCommunity is one extended community value. Concrete forms are
// selected by the (type, subtype) octet pair; any pair the model does not
// recognize is representable as OpaqueExtendedCommunity, so construction
// never rejects a syntactically well-formed community.
type ExtendedCommunity interface {
	// TypeOctet returns the raw type octet, transitivity bit included.
	TypeOctet() uint8
	// SubtypeOctet returns the raw subtype octet.
	SubtypeOctet() uint8
	// Bytes returns the full wire image: 8 octets for RFC 4360 forms,
	// 20 octets for the IPv6-address-specific form.
	Bytes() []byte
	fmt.Stringer
}

// NewExtendedCommunity builds the typed form matching the (type, subtype)
// pair from the 6 value octets. Unrecognized pairs fall back to
// OpaqueExtendedCommunity carrying the raw value, never an error.
func NewExtendedCommunity(typ, subtype uint8, value [6]byte) ExtendedCommunity {
	switch typ {
	case ECTypeTransitiveTwoOctetAS, ECTypeNonTransitiveTwoOctetAS:
		return TwoOctetASSpecific{
			Type:                typ,
			Subtype:             subtype,
			GlobalAdministrator: network.ASNFromUint16(binary.BigEndian.Uint16(value[0:2])),
			LocalAdministrator:  [4]byte{value[2], value[3], value[4], value[5]},
		}
	case ECTypeTransitiveIPv4Address, ECTypeNonTransitiveIPv4Address:
		return IPv4AddressSpecific{
			Type:                typ,
			Subtype:             subtype,
			GlobalAdministrator: netip.AddrFrom4([4]byte{value[0], value[1], value[2], value[3]}),
			LocalAdministrator:  [2]byte{value[4], value[5]},
		}
	case ECTypeTransitiveFourOctetAS, ECTypeNonTransitiveFourOctetAS:
		return FourOctetASSpecific{
			Type:                typ,
			Subtype:             subtype,
			GlobalAdministrator: network.ASN(binary.BigEndian.Uint32(value[0:4])),
			LocalAdministrator:  [2]byte{value[4], value[5]},
		}
	case ECTypeNonTransitiveOpaque:
		if subtype == ECSubtypeOriginValidationState {
			return OriginValidation{State: ValidationState(value[5])}
		}
		return OpaqueExtendedCommunity{Type: typ, Subtype: subtype, Value: value}
	case ECTypeTransitiveOpaque:
		return OpaqueExtendedCommunity{Type: typ, Subtype: subtype, Value: value}
	default:
		return OpaqueExtendedCommunity{Type: typ, Subtype: subtype, Value: value}
	}
}

// IsTransitive reports whether an extended community type octet marks the
// community transitive across AS boundaries.
func IsTransitive(typeOctet uint8) bool {
	return typeOctet&ecNonTransitiveBit == 0
}

// TwoOctetASSpecific is the 2-octet-AS-specific form (RFC 4360 §3.1):
// 2-octet AS administrator, 4-octet local part.
type TwoOctetASSpecific struct {
	Type                uint8
	Subtype             uint8
	GlobalAdministrator network.ASN
	LocalAdministrator  [4]byte
}

func (e TwoOctetASSpecific) TypeOctet() uint8    { return e.Type }
func (e TwoOctetASSpecific) SubtypeOctet() uint8 { return e.Subtype }

func (e TwoOctetASSpecific) Bytes() []byte {
	b := make([]byte, 8)
	b[0], b[1] = e.Type, e.Subtype
	binary.BigEndian.PutUint16(b[2:4], uint16(e.GlobalAdministrator))
	copy(b[4:], e.LocalAdministrator[:])
	return b
}

func (e TwoOctetASSpecific) String() string {
	return fmt.Sprintf("%d:%d:%s:%X", e.Type, e.Subtype, e.GlobalAdministrator, e.LocalAdministrator[:])
}

// IPv4AddressSpecific is the IPv4-address-specific form (RFC 4360 §3.2):
// 4-octet IPv4 administrator, 2-octet local part.
type IPv4AddressSpecific struct {
	Type                uint8
	Subtype             uint8
	GlobalAdministrator netip.Addr
	LocalAdministrator  [2]byte
}

func (e IPv4AddressSpecific) TypeOctet() uint8    { return e.Type }
func (e IPv4AddressSpecific) SubtypeOctet() uint8 { return e.Subtype }

func (e IPv4AddressSpecific) Bytes() []byte {
	b := make([]byte, 8)
	b[0], b[1] = e.Type, e.Subtype
	addr := e.GlobalAdministrator.As4()
	copy(b[2:6], addr[:])
	copy(b[6:], e.LocalAdministrator[:])
	return b
}

func (e IPv4AddressSpecific) String() string {
	return fmt.Sprintf("%d:%d:%s:%X", e.Type, e.Subtype, e.GlobalAdministrator, e.LocalAdministrator[:])
}

// FourOctetASSpecific is the 4-octet-AS-specific form (RFC 5668):
// 4-octet AS administrator, 2-octet local part.
type FourOctetASSpecific struct {
	Type                uint8
	Subtype             uint8
	GlobalAdministrator network.ASN
	LocalAdministrator  [2]byte
}

func (e FourOctetASSpecific) TypeOctet() uint8    { return e.Type }
func (e FourOctetASSpecific) SubtypeOctet() uint8 { return e.Subtype }

func (e FourOctetASSpecific) Bytes() []byte {
	b := make([]byte, 8)
	b[0], b[1] = e.Type, e.Subtype
	binary.BigEndian.PutUint32(b[2:6], uint32(e.GlobalAdministrator))
	copy(b[6:], e.LocalAdministrator[:])
	return b
}

func (e FourOctetASSpecific) String() string {
	return fmt.Sprintf("%d:%d:%s:%X", e.Type, e.Subtype, e.GlobalAdministrator, e.LocalAdministrator[:])
}

// IPv6AddressSpecific is the 20-octet IPv6-address-specific form
// (RFC 5701): 16-octet IPv6 administrator, 2-octet local part. It travels
// in its own attribute on the wire but shares the extended community
// vocabulary here.
type IPv6AddressSpecific struct {
	Type                uint8
	Subtype             uint8
	GlobalAdministrator netip.Addr
	LocalAdministrator  [2]byte
}

func (e IPv6AddressSpecific) TypeOctet() uint8    { return e.Type }
func (e IPv6AddressSpecific) SubtypeOctet() uint8 { return e.Subtype }

func (e IPv6AddressSpecific) Bytes() []byte {
	b := make([]byte, 20)
	b[0], b[1] = e.Type, e.Subtype
	addr := e.GlobalAdministrator.As16()
	copy(b[2:18], addr[:])
	copy(b[18:], e.LocalAdministrator[:])
	return b
}

func (e IPv6AddressSpecific) String() string {
	return fmt.Sprintf("%d:%d:%s:%X", e.Type, e.Subtype, e.GlobalAdministrator, e.LocalAdministrator[:])
}

// OpaqueExtendedCommunity carries the raw 6 value octets of either a typed
// opaque community (type 0x03/0x43) or any (type, subtype) pair the model
// does not recognize. Nothing is lost: the full 8 bytes read back exactly.
type OpaqueExtendedCommunity struct {
	Type    uint8
	Subtype uint8
	Value   [6]byte
}

func (e OpaqueExtendedCommunity) TypeOctet() uint8    { return e.Type }
func (e OpaqueExtendedCommunity) SubtypeOctet() uint8 { return e.Subtype }

func (e OpaqueExtendedCommunity) Bytes() []byte {
	b := make([]byte, 8)
	b[0], b[1] = e.Type, e.Subtype
	copy(b[2:], e.Value[:])
	return b
}

func (e OpaqueExtendedCommunity) String() string {
	return fmt.Sprintf("%d:%d:%X", e.Type, e.Subtype, e.Value[:])
}

// ValidationState is a prefix origin validation state (RFC 8097 §3).
type ValidationState uint8

const (
	ValidationStateValid    ValidationState = 0
	ValidationStateNotFound ValidationState = 1
	ValidationStateInvalid  ValidationState = 2
)

func (s ValidationState) String() string {
	switch s {
	case ValidationStateValid:
		return "valid"
	case ValidationStateNotFound:
		return "not-found"
	case ValidationStateInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("validation-state(%d)", uint8(s))
	}
}

// OriginValidation is the origin validation state extended community
// (RFC 8097), type 0x43 subtype 0x00 with the state in the last value
// octet.
type OriginValidation struct {
	State ValidationState
}

func (e OriginValidation) TypeOctet() uint8    { return ECTypeNonTransitiveOpaque }
func (e OriginValidation) SubtypeOctet() uint8 { return ECSubtypeOriginValidationState }

func (e OriginValidation) Bytes() []byte {
	b := make([]byte, 8)
	b[0], b[1] = ECTypeNonTransitiveOpaque, ECSubtypeOriginValidationState
	b[7] = uint8(e.State)
	return b
}

func (e OriginValidation) String() string {
	return "validation-state:" + e.State.String()
}
