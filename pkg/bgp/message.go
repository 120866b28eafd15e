package bgp

import (
	"net/netip"
	"strconv"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// MessageType is a BGP message type code (RFC 4271 §4.1).
type MessageType uint8

const (
	MessageTypeOpen         MessageType = 1
	MessageTypeUpdate       MessageType = 2
	MessageTypeNotification MessageType = 3
	MessageTypeKeepalive    MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeOpen:
		return "OPEN"
	case MessageTypeUpdate:
		return "UPDATE"
	case MessageTypeNotification:
		return "NOTIFICATION"
	case MessageTypeKeepalive:
		return "KEEPALIVE"
	default:
		return "MESSAGE(" + strconv.Itoa(int(t)) + ")"
	}
}

// Message is one BGP message. Consumers switch on the concrete type; only
// MRT records own messages, never other model entities.
type Message interface {
	MessageType() MessageType
}

// OptParam is an optional parameter from an OPEN message, kept as its raw
// type code and value (capability decoding is a codec concern).
type OptParam struct {
	Type  uint8
	Value []byte
}

// OpenMessage is a BGP OPEN (RFC 4271 §4.2).
type OpenMessage struct {
	Version    uint8
	ASN        network.ASN
	HoldTime   uint16
	Identifier netip.Addr
	OptParams  []OptParam
}

func (m OpenMessage) MessageType() MessageType { return MessageTypeOpen }

// UpdateMessage is a BGP UPDATE (RFC 4271 §4.3). Withdrawn routes and
// announced NLRI are wire-distinct lists and are never merged; both keep
// their original order, as does the attribute set.
type UpdateMessage struct {
	WithdrawnPrefixes []network.Prefix
	Attributes        AttributeSet
	AnnouncedPrefixes []network.Prefix
}

func (m UpdateMessage) MessageType() MessageType { return MessageTypeUpdate }

// NotificationMessage is a BGP NOTIFICATION (RFC 4271 §4.5). Code and
// subcode stay separate fields; Data is the raw error payload, whose
// semantics the model does not interpret.
type NotificationMessage struct {
	ErrorCode    ErrorCode
	ErrorSubcode uint8
	Data         []byte
}

func (m NotificationMessage) MessageType() MessageType { return MessageTypeNotification }

// KeepaliveMessage is a BGP KEEPALIVE, which carries nothing.
type KeepaliveMessage struct{}

func (m KeepaliveMessage) MessageType() MessageType { return MessageTypeKeepalive }
