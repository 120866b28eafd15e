package bgp

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/route-beacon/bgp-models/pkg/network"
)

// ElemType says whether an element announces or withdraws its prefix.
type ElemType uint8

const (
	ElemAnnounce ElemType = iota
	ElemWithdraw
)

func (t ElemType) String() string {
	if t == ElemWithdraw {
		return "W"
	}
	return "A"
}

func (t ElemType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Elem is a flattened per-prefix view of a route: one announced or
// withdrawn prefix together with the attributes that applied to it. Table
// builders emit one Elem per prefix of an UPDATE or RIB entry, trading
// memory (attributes are duplicated across the prefixes of one record) for
// a representation analysis code can stream row by row.
//
// Optional attributes are pointers (or zero Addr values) when absent;
// withdrawals carry only the prefix and peer fields.
type Elem struct {
	Timestamp  float64
	Type       ElemType
	PeerIP     netip.Addr
	PeerASN    network.ASN
	Prefix     network.Prefix
	NextHop    netip.Addr
	ASPath     *ASPath
	OriginASNs []network.ASN
	Origin     *Origin
	LocalPref  *uint32
	MED        *uint32
	Commun     []Community
	Atomic     *AtomicAggregate
	AggrASN    *network.ASN
	AggrIP     netip.Addr
}

// String renders the element in the pipe-delimited exchange form:
//
//	A|ts|peer_ip|peer_asn|prefix|as_path|origin|next_hop|local_pref|med|communities|atomic|aggr_asn|aggr_ip
func (e *Elem) String() string {
	fields := []string{
		e.Type.String(),
		strconv.FormatFloat(e.Timestamp, 'f', -1, 64),
		addrString(e.PeerIP),
		e.PeerASN.String(),
		e.Prefix.String(),
		optString(e.ASPath),
		optString(e.Origin),
		addrString(e.NextHop),
		optUint32(e.LocalPref),
		optUint32(e.MED),
		communitiesString(e.Commun),
		optString(e.Atomic),
		optString(e.AggrASN),
		addrString(e.AggrIP),
	}
	return strings.Join(fields, "|")
}

func addrString(a netip.Addr) string {
	if !a.IsValid() {
		return ""
	}
	return a.String()
}

func optString[T fmt.Stringer](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).String()
}

func optUint32(v *uint32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func communitiesString(cs []Community) string {
	if len(cs) == 0 {
		return ""
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return strings.Join(out, " ")
}
