package hashtable

// Op identifies the table operation that produced a collision log record.
type Op string

// Operations that can appear in the collision log. Deletion delegates its
// probing to Search, so its walks are recorded as OpSearch.
const (
	OpInsert Op = "insert"
	OpSearch Op = "search"
	OpDelete Op = "delete"
)

// Record is one immutable collision log entry: the full probe walk of an
// operation that visited more than one slot, plus the arithmetic behind it.
type Record struct {
	Key            string      `json:"key"`
	Op             Op          `json:"operation"`
	ProbeSequence  []int       `json:"probe_sequence"`
	CollisionCount int         `json:"collision_count"`
	Resolution     string      `json:"resolution"`
	Calculation    Calculation `json:"calculation_details"`
}

// appendRecord adds a collision record to the log.
// CollisionCount is always derived from the probe sequence.
func (t *Table) appendRecord(key string, op Op, seq []int, resolution string, calc *Calculation) {
	t.log = append(t.log, Record{
		Key:            key,
		Op:             op,
		ProbeSequence:  append([]int(nil), seq...),
		CollisionCount: len(seq) - 1,
		Resolution:     resolution,
		Calculation:    *calc,
	})
}

// CollisionLog returns a copy of the collision log, oldest record first.
// The log only ever grows; records are never rewritten or dropped.
func (t *Table) CollisionLog() []Record {
	return append([]Record(nil), t.log...)
}
