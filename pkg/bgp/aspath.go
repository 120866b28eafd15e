package bgp

import (
	"strings"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// AS_PATH segment types (RFC 4271 §4.3, RFC 5065 for confederations).
type SegmentType uint8

const (
	SegmentASSet          SegmentType = 1
	SegmentASSequence     SegmentType = 2
	SegmentConfedSequence SegmentType = 3
	SegmentConfedSet      SegmentType = 4
)

func (t SegmentType) String() string {
	switch t {
	case SegmentASSet:
		return "AS_SET"
	case SegmentASSequence:
		return "AS_SEQUENCE"
	case SegmentConfedSequence:
		return "AS_CONFED_SEQUENCE"
	case SegmentConfedSet:
		return "AS_CONFED_SET"
	default:
		return "AS_SEGMENT_UNKNOWN"
	}
}

// ASPathSegment is one segment of an AS path. The segment type is never
// collapsed by the model: a set stays a set through any transformation.
// An empty ASN list is a valid segment.
type ASPathSegment struct {
	Type SegmentType
	ASNs []network.ASN
}

// CountASNs returns the segment's contribution to AS path length for
// route selection: each member of a sequence counts one, a set counts one
// in total, confederation segments count zero.
func (s ASPathSegment) CountASNs() int {
	switch s.Type {
	case SegmentASSequence:
		return len(s.ASNs)
	case SegmentASSet:
		return 1
	default:
		return 0
	}
}

func (s ASPathSegment) String() string {
	asns := make([]string, len(s.ASNs))
	for i, a := range s.ASNs {
		asns[i] = a.String()
	}
	switch s.Type {
	case SegmentASSet, SegmentConfedSet:
		return "{" + strings.Join(asns, ",") + "}"
	default:
		return strings.Join(asns, " ")
	}
}

// ASPath is an ordered sequence of path segments.
type ASPath struct {
	Segments []ASPathSegment
}

// NewASPath builds a path from its segments in order.
func NewASPath(segments ...ASPathSegment) ASPath {
	return ASPath{Segments: segments}
}

// Sequence is shorthand for a path of one AS_SEQUENCE segment.
func Sequence(asns ...network.ASN) ASPath {
	return NewASPath(ASPathSegment{Type: SegmentASSequence, ASNs: asns})
}

// CountASNs returns the AS path length over all segments.
func (p ASPath) CountASNs() int {
	n := 0
	for _, s := range p.Segments {
		n += s.CountASNs()
	}
	return n
}

// Origin returns the origin AS, the last ASN of the last sequence segment.
// The origin is ambiguous when the path is empty or ends in a set; ok is
// false in that case.
func (p ASPath) Origin() (network.ASN, bool) {
	if len(p.Segments) == 0 {
		return 0, false
	}
	last := p.Segments[len(p.Segments)-1]
	if last.Type != SegmentASSequence || len(last.ASNs) == 0 {
		return 0, false
	}
	return last.ASNs[len(last.ASNs)-1], true
}

func (p ASPath) String() string {
	segs := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		segs[i] = s.String()
	}
	return strings.Join(segs, " ")
}
