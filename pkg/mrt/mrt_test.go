package mrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func uint32p(v uint32) *uint32 { return &v }

func TestUnsupportedFallback(t *testing.T) {
	rec := Record{
		Header: Header{Timestamp: 1638316800, Type: TypeISIS, Subtype: 0, Length: 3},
		Body:   Unsupported{Type: TypeISIS, Subtype: 0, Data: []byte{0x01, 0x02, 0x03}},
	}

	body, ok := rec.Body.(Unsupported)
	require.True(t, ok)
	assert.Equal(t, TypeISIS, body.Type)
	assert.Equal(t, uint16(0), body.Subtype)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, body.Data)

	// The fallback is never confused with a modeled body.
	switch rec.Body.(type) {
	case PeerIndexTable, RIBAfiEntries, RIBGenericEntries, BGP4MPMessage, StateChange:
		t.Fatalf("unsupported record matched a modeled body: %T", rec.Body)
	case Unsupported:
	default:
		t.Fatalf("unexpected body type %T", rec.Body)
	}
}

func TestEntryType_HasExtendedTimestamp(t *testing.T) {
	tests := []struct {
		typ  EntryType
		want bool
	}{
		{TypeBGP4MP, false},
		{TypeBGP4MPET, true},
		{TypeTableDumpV2, false},
		{TypeISISET, true},
		{TypeOSPFv3ET, true},
		{TypeOSPFv2, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.HasExtendedTimestamp())
		})
	}
}

func TestEntryType_String(t *testing.T) {
	assert.Equal(t, "TABLE_DUMP_V2", TypeTableDumpV2.String())
	assert.Equal(t, "BGP4MP_ET", TypeBGP4MPET.String())
	assert.Equal(t, "BGP4PLUS_01", TypeBGP4Plus01.String())
	assert.Equal(t, "TYPE(99)", EntryType(99).String())
}

func TestHeader_Microseconds(t *testing.T) {
	plain := Header{Timestamp: 1638316800, Type: TypeBGP4MP, Subtype: uint16(SubtypeMessageAS4)}
	assert.Nil(t, plain.Microseconds)

	et := Header{
		Timestamp:    1638316800,
		Microseconds: uint32p(250000),
		Type:         TypeBGP4MPET,
		Subtype:      uint16(SubtypeMessageAS4),
	}
	require.NotNil(t, et.Microseconds)
	assert.Equal(t, uint32(250000), *et.Microseconds)
	assert.True(t, et.Type.HasExtendedTimestamp())
}

func TestHeader_MarshalLogObject(t *testing.T) {
	h := Header{
		Timestamp:    1638316800,
		Microseconds: uint32p(42),
		Type:         TypeBGP4MPET,
		Subtype:      4,
		Length:       120,
	}

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, h.MarshalLogObject(enc))

	assert.Equal(t, uint32(1638316800), enc.Fields["timestamp"])
	assert.Equal(t, uint32(42), enc.Fields["microseconds"])
	assert.Equal(t, "BGP4MP_ET", enc.Fields["type"])
	assert.Equal(t, uint16(4), enc.Fields["subtype"])
	assert.Equal(t, uint32(120), enc.Fields["length"])
}
