// Package network holds the primitive routing types shared by the BGP and
// MRT models: AS numbers, address families, prefixes and next hops.
//
// Everything in this package is a plain immutable value. Construction is the
// only operation; once built, values are safe to share across goroutines
// without synchronization.
package network

import "strconv"

// ASN is an autonomous system number (RFC 6793). All values are stored in
// the 4-octet space; a legacy 2-octet ASN is simply a value below 65536.
type ASN uint32

// ASNFromUint16 widens a 2-octet AS number. The widening is always lossless.
func ASNFromUint16(v uint16) ASN {
	return ASN(v)
}

// Is16Bit reports whether the ASN fits in the legacy 2-octet space.
func (a ASN) Is16Bit() bool {
	return a <= 0xFFFF
}

// Uint16 narrows the ASN to a 2-octet context. Values above 65535 cannot be
// narrowed and fail with ASNumberTooLargeError.
func (a ASN) Uint16() (uint16, error) {
	if !a.Is16Bit() {
		return 0, &ASNumberTooLargeError{ASN: a}
	}
	return uint16(a), nil
}

func (a ASN) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// ASN length tags. BGP4MP and TABLE_DUMP records carry AS numbers in either
// 2-octet or 4-octet encoding depending on the subtype; the width is an
// explicit tag on the record, never inferred from payload length.
type ASNLength uint8

const (
	ASNLength16 ASNLength = 2
	ASNLength32 ASNLength = 4
)

func (l ASNLength) String() string {
	switch l {
	case ASNLength16:
		return "16-bit"
	case ASNLength32:
		return "32-bit"
	default:
		return "unknown(" + strconv.Itoa(int(l)) + ")"
	}
}

// AddrMeta carries the address family and ASN width a decoder established
// from an MRT subtype. It tags records whose payload layout depends on both.
type AddrMeta struct {
	AFI    AFI
	ASNLen ASNLength
}
