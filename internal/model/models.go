package model

// Key identifies a lookup table entry: destination port plus the
// canonical lowercase protocol name.
type Key struct {
	Port     string
	Protocol string
}

// Untagged is the sentinel tag for records with no lookup match.
const Untagged = "Untagged"

// FieldCount is the number of whitespace-separated fields a flow log
// line must carry to be processed.
const FieldCount = 14

// FlowRecord holds one flow log line in the default 14-field layout.
// Only DstPort and ProtocolNumber feed aggregation; the rest are
// carried so callers can inspect skipped or matched records.
type FlowRecord struct {
	Version        string
	AccountID      string
	InterfaceID    string
	SrcAddr        string
	DstAddr        string
	SrcPort        string
	DstPort        string
	ProtocolNumber string
	Packets        string
	Bytes          string
	Start          string
	End            string
	Action         string
	LogStatus      string
}

// Tally accumulates the two aggregate views over a flow log.
type Tally struct {
	Tags          map[string]int
	PortProtocols map[Key]int
}

func NewTally() Tally {
	return Tally{
		Tags:          make(map[string]int),
		PortProtocols: make(map[Key]int),
	}
}
