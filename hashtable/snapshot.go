package hashtable

import "fmt"

// Snapshot is the plain value export of a table's entire state. It is the
// contract the persistence layer serializes; the table knows nothing about
// on-disk encodings.
type Snapshot struct {
	Capacity   int      `json:"capacity"`
	Live       int      `json:"live"`
	Collisions int      `json:"collisions"`
	Log        []Record `json:"collision_log"`
	Slots      []*Entry `json:"slots"`
}

// Snapshot exports the table state. The returned value shares nothing with
// the table; mutating it does not affect the table and vice versa.
func (t *Table) Snapshot() *Snapshot {
	slots := make([]*Entry, t.capacity)
	for i, slot := range t.slots {
		if slot != nil {
			e := *slot
			slots[i] = &e
		}
	}
	return &Snapshot{
		Capacity:   t.capacity,
		Live:       t.live,
		Collisions: t.collisions,
		Log:        append([]Record(nil), t.log...),
		Slots:      slots,
	}
}

// FromSnapshot reconstructs a table from an exported state.
//
// The snapshot must be internally consistent: the slot count must equal the
// capacity and the recorded live count must match the live slots. Round-trip
// through Snapshot is exact, including the collision log.
func FromSnapshot(s *Snapshot) (*Table, error) {
	t, err := New(s.Capacity)
	if err != nil {
		return nil, err
	}
	if len(s.Slots) != s.Capacity {
		return nil, fmt.Errorf("snapshot has %d slots for capacity %d", len(s.Slots), s.Capacity)
	}

	live := 0
	for i, slot := range s.Slots {
		if slot == nil {
			continue
		}
		e := *slot
		t.slots[i] = &e
		if !e.Tombstone {
			live++
		}
	}
	if live != s.Live {
		return nil, fmt.Errorf("snapshot live count %d does not match %d live slots", s.Live, live)
	}

	t.live = live
	t.collisions = s.Collisions
	t.log = append([]Record(nil), s.Log...)

	return t, nil
}
