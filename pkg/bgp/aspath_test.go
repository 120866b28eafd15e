package bgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-beacon/bgp-models/pkg/network"
)

func TestASPath_String(t *testing.T) {
	tests := []struct {
		name string
		path ASPath
		want string
	}{
		{
			name: "single sequence",
			path: Sequence(64496, 64497, 64498),
			want: "64496 64497 64498",
		},
		{
			name: "sequence then set",
			path: NewASPath(
				ASPathSegment{Type: SegmentASSequence, ASNs: []network.ASN{64496}},
				ASPathSegment{Type: SegmentASSet, ASNs: []network.ASN{64497, 64498}},
			),
			want: "64496 {64497,64498}",
		},
		{
			name: "confed set",
			path: NewASPath(ASPathSegment{Type: SegmentConfedSet, ASNs: []network.ASN{64496, 64497}}),
			want: "{64496,64497}",
		},
		{
			name: "empty path",
			path: NewASPath(),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestASPath_CountASNs(t *testing.T) {
	tests := []struct {
		name string
		path ASPath
		want int
	}{
		{name: "sequence counts members", path: Sequence(1, 2, 3, 4), want: 4},
		{
			name: "set counts one",
			path: NewASPath(ASPathSegment{Type: SegmentASSet, ASNs: []network.ASN{1, 2, 3}}),
			want: 1,
		},
		{
			name: "confed segments count zero",
			path: NewASPath(
				ASPathSegment{Type: SegmentConfedSequence, ASNs: []network.ASN{1, 2}},
				ASPathSegment{Type: SegmentConfedSet, ASNs: []network.ASN{3}},
			),
			want: 0,
		},
		{
			name: "mixed",
			path: NewASPath(
				ASPathSegment{Type: SegmentASSequence, ASNs: []network.ASN{1, 2}},
				ASPathSegment{Type: SegmentASSet, ASNs: []network.ASN{3, 4}},
			),
			want: 3,
		},
		{
			name: "empty set still counts one",
			path: NewASPath(ASPathSegment{Type: SegmentASSet, ASNs: nil}),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.CountASNs())
		})
	}
}

func TestASPath_Origin(t *testing.T) {
	origin, ok := Sequence(64496, 64497, 70000).Origin()
	require.True(t, ok)
	assert.Equal(t, network.ASN(70000), origin)

	// Path ending in a set has no unambiguous origin.
	_, ok = NewASPath(
		ASPathSegment{Type: SegmentASSequence, ASNs: []network.ASN{64496}},
		ASPathSegment{Type: SegmentASSet, ASNs: []network.ASN{64497, 64498}},
	).Origin()
	assert.False(t, ok)

	_, ok = NewASPath().Origin()
	assert.False(t, ok)
}

func TestASPathSegment_TypePreserved(t *testing.T) {
	// A set with one member remains a set; the model never collapses
	// segment types.
	seg := ASPathSegment{Type: SegmentASSet, ASNs: []network.ASN{64496}}
	path := NewASPath(seg)

	require.Len(t, path.Segments, 1)
	assert.Equal(t, SegmentASSet, path.Segments[0].Type)
	assert.Equal(t, "{64496}", path.String())
}

func TestSegmentType_String(t *testing.T) {
	assert.Equal(t, "AS_SET", SegmentASSet.String())
	assert.Equal(t, "AS_SEQUENCE", SegmentASSequence.String())
	assert.Equal(t, "AS_CONFED_SEQUENCE", SegmentConfedSequence.String())
	assert.Equal(t, "AS_CONFED_SET", SegmentConfedSet.String())
}
