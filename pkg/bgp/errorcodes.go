package bgp

import "strconv"

// ErrorCode is a NOTIFICATION error code (RFC 4271 §6, RFC 7313).
//
// https://www.iana.org/assignments/bgp-parameters/bgp-parameters.xhtml#bgp-parameters-3
type ErrorCode uint8

const (
	ErrorCodeReserved                ErrorCode = 0
	ErrorCodeMessageHeaderError      ErrorCode = 1
	ErrorCodeOpenMessageError        ErrorCode = 2
	ErrorCodeUpdateMessageError      ErrorCode = 3
	ErrorCodeHoldTimerExpired        ErrorCode = 4
	ErrorCodeFiniteStateMachineError ErrorCode = 5
	ErrorCodeCease                   ErrorCode = 6
	ErrorCodeRouteRefreshError       ErrorCode = 7
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeReserved:                "Reserved",
	ErrorCodeMessageHeaderError:      "Message Header Error",
	ErrorCodeOpenMessageError:        "OPEN Message Error",
	ErrorCodeUpdateMessageError:      "UPDATE Message Error",
	ErrorCodeHoldTimerExpired:        "Hold Timer Expired",
	ErrorCodeFiniteStateMachineError: "Finite State Machine Error",
	ErrorCodeCease:                   "Cease",
	ErrorCodeRouteRefreshError:       "ROUTE-REFRESH Message Error",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "Error(" + strconv.Itoa(int(c)) + ")"
}

// Message Header Error subcodes.
const (
	SubcodeHeaderUnspecified         uint8 = 0
	SubcodeHeaderConnectionNotSynced uint8 = 1
	SubcodeHeaderBadMessageLength    uint8 = 2
	SubcodeHeaderBadMessageType      uint8 = 3
)

// OPEN Message Error subcodes.
const (
	SubcodeOpenUnspecified              uint8 = 0
	SubcodeOpenUnsupportedVersion       uint8 = 1
	SubcodeOpenBadPeerAS                uint8 = 2
	SubcodeOpenBadBGPIdentifier         uint8 = 3
	SubcodeOpenUnsupportedOptionalParam uint8 = 4
	SubcodeOpenUnacceptableHoldTime     uint8 = 6
	SubcodeOpenUnsupportedCapability    uint8 = 7
	SubcodeOpenRoleMismatch             uint8 = 11
)

// UPDATE Message Error subcodes.
const (
	SubcodeUpdateUnspecified          uint8 = 0
	SubcodeUpdateMalformedAttrList    uint8 = 1
	SubcodeUpdateUnrecognizedAttr     uint8 = 2
	SubcodeUpdateMissingWellKnownAttr uint8 = 3
	SubcodeUpdateAttrFlagsError       uint8 = 4
	SubcodeUpdateAttrLengthError      uint8 = 5
	SubcodeUpdateInvalidOrigin        uint8 = 6
	SubcodeUpdateInvalidNextHop       uint8 = 8
	SubcodeUpdateOptionalAttrError    uint8 = 9
	SubcodeUpdateInvalidNetworkField  uint8 = 10
	SubcodeUpdateMalformedASPath      uint8 = 11
)

// Finite State Machine Error subcodes.
const (
	SubcodeFSMUnspecified           uint8 = 0
	SubcodeFSMUnexpectedOpenSent    uint8 = 1
	SubcodeFSMUnexpectedOpenConfirm uint8 = 2
	SubcodeFSMUnexpectedEstablished uint8 = 3
)

// Cease subcodes (RFC 4486, RFC 8203, RFC 9384).
const (
	SubcodeCeaseReserved            uint8 = 0
	SubcodeCeaseMaxPrefixes         uint8 = 1
	SubcodeCeaseAdminShutdown       uint8 = 2
	SubcodeCeasePeerDeconfigured    uint8 = 3
	SubcodeCeaseAdminReset          uint8 = 4
	SubcodeCeaseConnectionRejected  uint8 = 5
	SubcodeCeaseConfigChange        uint8 = 6
	SubcodeCeaseCollisionResolution uint8 = 7
	SubcodeCeaseOutOfResources      uint8 = 8
	SubcodeCeaseHardReset           uint8 = 9
	SubcodeCeaseBFDDown             uint8 = 10
)

// ROUTE-REFRESH Message Error subcodes (RFC 7313).
const (
	SubcodeRouteRefreshReserved      uint8 = 0
	SubcodeRouteRefreshInvalidLength uint8 = 1
)

var errorSubcodeNames = map[ErrorCode]map[uint8]string{
	ErrorCodeMessageHeaderError: {
		SubcodeHeaderUnspecified:         "Unspecified",
		SubcodeHeaderConnectionNotSynced: "Connection Not Synchronized",
		SubcodeHeaderBadMessageLength:    "Bad Message Length",
		SubcodeHeaderBadMessageType:      "Bad Message Type",
	},
	ErrorCodeOpenMessageError: {
		SubcodeOpenUnspecified:              "Unspecified",
		SubcodeOpenUnsupportedVersion:       "Unsupported Version Number",
		SubcodeOpenBadPeerAS:                "Bad Peer AS",
		SubcodeOpenBadBGPIdentifier:         "Bad BGP Identifier",
		SubcodeOpenUnsupportedOptionalParam: "Unsupported Optional Parameter",
		SubcodeOpenUnacceptableHoldTime:     "Unacceptable Hold Time",
		SubcodeOpenUnsupportedCapability:    "Unsupported Capability",
		SubcodeOpenRoleMismatch:             "Role Mismatch",
	},
	ErrorCodeUpdateMessageError: {
		SubcodeUpdateUnspecified:          "Unspecified",
		SubcodeUpdateMalformedAttrList:    "Malformed Attribute List",
		SubcodeUpdateUnrecognizedAttr:     "Unrecognized Well-known Attribute",
		SubcodeUpdateMissingWellKnownAttr: "Missing Well-known Attribute",
		SubcodeUpdateAttrFlagsError:       "Attribute Flags Error",
		SubcodeUpdateAttrLengthError:      "Attribute Length Error",
		SubcodeUpdateInvalidOrigin:        "Invalid ORIGIN Attribute",
		SubcodeUpdateInvalidNextHop:       "Invalid NEXT_HOP Attribute",
		SubcodeUpdateOptionalAttrError:    "Optional Attribute Error",
		SubcodeUpdateInvalidNetworkField:  "Invalid Network Field",
		SubcodeUpdateMalformedASPath:      "Malformed AS_PATH",
	},
	ErrorCodeFiniteStateMachineError: {
		SubcodeFSMUnspecified:           "Unspecified Error",
		SubcodeFSMUnexpectedOpenSent:    "Unexpected Message in OpenSent State",
		SubcodeFSMUnexpectedOpenConfirm: "Unexpected Message in OpenConfirm State",
		SubcodeFSMUnexpectedEstablished: "Unexpected Message in Established State",
	},
	ErrorCodeCease: {
		SubcodeCeaseReserved:            "Reserved",
		SubcodeCeaseMaxPrefixes:         "Maximum Number of Prefixes Reached",
		SubcodeCeaseAdminShutdown:       "Administrative Shutdown",
		SubcodeCeasePeerDeconfigured:    "Peer De-configured",
		SubcodeCeaseAdminReset:          "Administrative Reset",
		SubcodeCeaseConnectionRejected:  "Connection Rejected",
		SubcodeCeaseConfigChange:        "Other Configuration Change",
		SubcodeCeaseCollisionResolution: "Connection Collision Resolution",
		SubcodeCeaseOutOfResources:      "Out of Resources",
		SubcodeCeaseHardReset:           "Hard Reset",
		SubcodeCeaseBFDDown:             "BFD Down",
	},
	ErrorCodeRouteRefreshError: {
		SubcodeRouteRefreshReserved:      "Reserved",
		SubcodeRouteRefreshInvalidLength: "Invalid Message Length",
	},
}

// SubcodeName returns the IANA name of an error subcode under its code, or
// a numeric placeholder for unassigned values. The tables are static,
// read-only data.
func SubcodeName(code ErrorCode, subcode uint8) string {
	if sub, ok := errorSubcodeNames[code]; ok {
		if name, ok := sub[subcode]; ok {
			return name
		}
	}
	return "Subcode(" + strconv.Itoa(int(subcode)) + ")"
}
