package network

import "strconv"

// AFI is an address family identifier (IANA address-family-numbers).
type AFI uint16

const (
	AFIIPv4 AFI = 1
	AFIIPv6 AFI = 2
)

// Bits returns the address bit width of the family, or 0 for families this
// model has no fixed width for.
func (a AFI) Bits() int {
	switch a {
	case AFIIPv4:
		return 32
	case AFIIPv6:
		return 128
	default:
		return 0
	}
}

func (a AFI) String() string {
	switch a {
	case AFIIPv4:
		return "ipv4"
	case AFIIPv6:
		return "ipv6"
	default:
		return "afi(" + strconv.Itoa(int(a)) + ")"
	}
}

// SAFI is a subsequent address family identifier.
type SAFI uint8

const (
	SAFIUnicast          SAFI = 1
	SAFIMulticast        SAFI = 2
	SAFIUnicastMulticast SAFI = 3
)

func (s SAFI) String() string {
	switch s {
	case SAFIUnicast:
		return "unicast"
	case SAFIMulticast:
		return "multicast"
	case SAFIUnicastMulticast:
		return "unicast+multicast"
	default:
		return "safi(" + strconv.Itoa(int(s)) + ")"
	}
}
