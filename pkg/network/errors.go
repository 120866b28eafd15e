package network

import (
	"fmt"
	"net/netip"
)

// InvalidPrefixLengthError is returned when a prefix length exceeds the bit
// width of its address family.
type InvalidPrefixLengthError struct {
	Addr   netip.Addr
	Length int
}

func (e *InvalidPrefixLengthError) Error() string {
	return fmt.Sprintf("network: prefix length %d exceeds %d-bit address %s", e.Length, e.Addr.BitLen(), e.Addr)
}

// ASNumberTooLargeError is returned when a 4-octet AS number is narrowed
// into a context that mandates a 2-octet value.
type ASNumberTooLargeError struct {
	ASN ASN
}

func (e *ASNumberTooLargeError) Error() string {
	return fmt.Sprintf("network: AS number %d does not fit in 16 bits", uint32(e.ASN))
}
