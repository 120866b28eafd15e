package bgp

import "go.uber.org/zap/zapcore"

// Structured logging adapters. Ingest pipelines log routes at volume;
// implementing zap's marshaler interfaces keeps that reflection-free.

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *Elem) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", e.Type.String())
	enc.AddFloat64("timestamp", e.Timestamp)
	enc.AddString("peer_ip", addrString(e.PeerIP))
	enc.AddUint32("peer_asn", uint32(e.PeerASN))
	enc.AddString("prefix", e.Prefix.String())
	if e.ASPath != nil {
		enc.AddString("as_path", e.ASPath.String())
	}
	if e.Origin != nil {
		enc.AddString("origin", e.Origin.String())
	}
	if e.NextHop.IsValid() {
		enc.AddString("next_hop", e.NextHop.String())
	}
	if e.LocalPref != nil {
		enc.AddUint32("local_pref", *e.LocalPref)
	}
	if e.MED != nil {
		enc.AddUint32("med", *e.MED)
	}
	if len(e.Commun) > 0 {
		enc.AddString("communities", communitiesString(e.Commun))
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m UpdateMessage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("withdrawn", len(m.WithdrawnPrefixes))
	enc.AddInt("announced", len(m.AnnouncedPrefixes))
	return enc.AddArray("attributes", m.Attributes)
}

// MarshalLogArray implements zapcore.ArrayMarshaler, emitting attribute
// type names in wire order.
func (s AttributeSet) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, a := range s {
		enc.AppendString(a.AttrType().String())
	}
	return nil
}
