package domain

// Unknown marks a metric for which no value is known. Any negative value is
// treated as unknown.
const Unknown = -1.0

// Known reports whether v carries a real measurement.
func Known(v float64) bool {
	return v >= 0
}

// Metrics holds the traffic rates of a node or an edge.
type Metrics struct {
	// BPS is the bandwidth in bits per second.
	BPS float64
	// EPS is the error rate in events per second.
	EPS float64
	// PPS is the packet rate in packets per second.
	PPS float64
	// IfName is the local interface of an edge.
	IfName string
	// PeerIfName is the remote interface of an edge.
	PeerIfName string
}

// UnknownMetrics returns metrics with every rate unknown.
func UnknownMetrics() Metrics {
	return Metrics{BPS: Unknown, EPS: Unknown, PPS: Unknown}
}

// HasTraffic reports whether both bandwidth and packet rate are known and non-zero.
func (m Metrics) HasTraffic() bool {
	return m.BPS > 0 && m.PPS > 0
}

// Empty reports whether no rate is known at all.
func (m Metrics) Empty() bool {
	return !Known(m.BPS) && !Known(m.EPS) && !Known(m.PPS)
}

// BitsPerPacket returns the bps/pps ratio, or zero when it is undefined.
func (m Metrics) BitsPerPacket() float64 {
	if !m.HasTraffic() {
		return 0
	}
	return m.BPS / m.PPS
}
