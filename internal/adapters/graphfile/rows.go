package graphfile

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/zerr"
)

// Column names of the tabular traffic feed.
const (
	ColumnHost       = "host"
	ColumnPeerHost   = "peer_host"
	ColumnBPSRx      = "bps_rx"
	ColumnBPSTx      = "bps_tx"
	ColumnEPSRx      = "eps_rx"
	ColumnEPSTx      = "eps_tx"
	ColumnPPSRx      = "pps_rx"
	ColumnPPSTx      = "pps_tx"
	ColumnIfName     = "if_name"
	ColumnPeerIfName = "peer_if_name"
)

// Rates holds one direction of a row.
type Rates struct {
	BPS, EPS, PPS float64
}

func unknownRates() Rates {
	return Rates{BPS: domain.Unknown, EPS: domain.Unknown, PPS: domain.Unknown}
}

// Row is one record of the traffic feed: the traffic host exchanges with peer
// over one interface pair. Rx flows from peer to host, Tx from host to peer.
// Missing values are domain.Unknown.
type Row struct {
	Host       string
	Peer       string
	Rx         Rates
	Tx         Rates
	IfName     string
	PeerIfName string
}

// NewRow returns a row for host and peer with every rate unknown.
func NewRow(host, peer string) Row {
	return Row{Host: host, Peer: peer, Rx: unknownRates(), Tx: unknownRates()}
}

// Peered reports whether the row names a peer.
func (r Row) Peered() bool {
	return r.Peer != ""
}

// RowFromRecord builds a row from a column → value record. Empty cells count
// as missing. Unknown columns are ignored.
func RowFromRecord(rec map[string]any) (Row, error) {
	row := NewRow("", "")
	for key, raw := range rec {
		if isBlank(raw) {
			continue
		}
		var err error
		switch key {
		case ColumnHost:
			row.Host = text(raw)
		case ColumnPeerHost:
			row.Peer = text(raw)
		case ColumnIfName:
			row.IfName = text(raw)
		case ColumnPeerIfName:
			row.PeerIfName = text(raw)
		case ColumnBPSRx:
			row.Rx.BPS, err = number(raw)
		case ColumnBPSTx:
			row.Tx.BPS, err = number(raw)
		case ColumnEPSRx:
			row.Rx.EPS, err = number(raw)
		case ColumnEPSTx:
			row.Tx.EPS, err = number(raw)
		case ColumnPPSRx:
			row.Rx.PPS, err = number(raw)
		case ColumnPPSTx:
			row.Tx.PPS, err = number(raw)
		}
		if err != nil {
			return Row{}, zerr.With(zerr.Wrap(err, "invalid cell"), "column", key)
		}
	}
	return row, nil
}

// RowsFromTable converts a column/rows table, the shape query backends return.
func RowsFromTable(columns []string, rows [][]any) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for i, cells := range rows {
		rec := make(map[string]any, len(columns))
		for c, v := range cells {
			if c < len(columns) {
				rec[columns[c]] = v
			}
		}
		row, err := RowFromRecord(rec)
		if err != nil {
			return nil, zerr.With(err, "row", i)
		}
		out = append(out, row)
	}
	return out, nil
}

// MergeRows folds rows with the same host and peer into one, later values
// overriding earlier ones. Order follows the first occurrence.
func MergeRows(rows []Row) []Row {
	type key struct{ host, peer string }
	index := make(map[key]int, len(rows))
	var out []Row
	for _, r := range rows {
		k := key{r.Host, r.Peer}
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, r)
			continue
		}
		out[i] = mergeRow(out[i], r)
	}
	return out
}

func mergeRow(into, from Row) Row {
	mergeRates(&into.Rx, from.Rx)
	mergeRates(&into.Tx, from.Tx)
	if from.IfName != "" {
		into.IfName = from.IfName
	}
	if from.PeerIfName != "" {
		into.PeerIfName = from.PeerIfName
	}
	return into
}

func mergeRates(into *Rates, from Rates) {
	if domain.Known(from.BPS) {
		into.BPS = from.BPS
	}
	if domain.Known(from.EPS) {
		into.EPS = from.EPS
	}
	if domain.Known(from.PPS) {
		into.PPS = from.PPS
	}
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func number(v any) (float64, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	return 0, zerr.With(zerr.New("unsupported value"), "value", fmt.Sprint(v))
}
