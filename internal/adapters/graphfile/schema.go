package graphfile

// graphFile is the on-disk shape of a graph file. JSON files parse as well,
// being valid YAML.
type graphFile struct {
	// Tables hold feed rows in column/rows form.
	Tables []tableDTO `yaml:"tables"`
	// Rows hold feed rows as records keyed by column.
	Rows  []map[string]any `yaml:"rows"`
	Nodes []nodeDTO        `yaml:"nodes"`
	Edges []edgeDTO        `yaml:"edges"`
}

type tableDTO struct {
	Columns []string `yaml:"columns"`
	Rows    [][]any  `yaml:"rows"`
}

type nodeDTO struct {
	ID           string   `yaml:"id"`
	Type         string   `yaml:"type"`
	ExternalType string   `yaml:"externalType"`
	BPS          *float64 `yaml:"bps"`
	EPS          *float64 `yaml:"eps"`
	PPS          *float64 `yaml:"pps"`
	X            *float64 `yaml:"x"`
	Y            *float64 `yaml:"y"`
}

type edgeDTO struct {
	Source     string   `yaml:"source"`
	Target     string   `yaml:"target"`
	Direction  string   `yaml:"direction"`
	BPS        *float64 `yaml:"bps"`
	EPS        *float64 `yaml:"eps"`
	PPS        *float64 `yaml:"pps"`
	IfName     string   `yaml:"ifName"`
	PeerIfName string   `yaml:"peerIfName"`
}
