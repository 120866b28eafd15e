package mrt

import "go.uber.org/zap/zapcore"

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (h Header) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("timestamp", h.Timestamp)
	if h.Microseconds != nil {
		enc.AddUint32("microseconds", *h.Microseconds)
	}
	enc.AddString("type", h.Type.String())
	enc.AddUint16("subtype", h.Subtype)
	enc.AddUint32("length", h.Length)
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p Peer) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("bgp_id", p.BGPID.String())
	enc.AddString("address", p.Address.String())
	enc.AddUint32("asn", uint32(p.ASN))
	enc.AddString("asn_length", p.ASNLength().String())
	return nil
}
