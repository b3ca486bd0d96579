package hashtable

import "github.com/benx3/double-hash-demo/model"

// SlotStatus is the observable state of one slot.
type SlotStatus string

const (
	SlotEmpty      SlotStatus = "empty"
	SlotTombstoned SlotStatus = "tombstoned"
	SlotOccupied   SlotStatus = "occupied"
)

// SlotState is a read-only view of one slot for presentation. Key is set for
// tombstoned and occupied slots; Product only for occupied ones.
type SlotState struct {
	Index   int
	Status  SlotStatus
	Key     string
	Product *model.Product
}

// PositionedProduct pairs a live product with the slot it occupies.
type PositionedProduct struct {
	Position int
	Product  model.Product
}

// Entries returns all live products in ascending slot order.
func (t *Table) Entries() []PositionedProduct {
	out := make([]PositionedProduct, 0, t.live)
	for i, slot := range t.slots {
		if slot != nil && !slot.Tombstone {
			out = append(out, PositionedProduct{Position: i, Product: slot.Product})
		}
	}
	return out
}

// SlotStates returns the state of every slot in index order.
func (t *Table) SlotStates() []SlotState {
	out := make([]SlotState, t.capacity)
	for i, slot := range t.slots {
		state := SlotState{Index: i, Status: SlotEmpty}
		if slot != nil {
			state.Key = slot.Product.Code
			if slot.Tombstone {
				state.Status = SlotTombstoned
			} else {
				state.Status = SlotOccupied
				p := slot.Product
				state.Product = &p
			}
		}
		out[i] = state
	}
	return out
}

// Statistics summarizes table occupancy and collision history.
type Statistics struct {
	Capacity   int     `json:"capacity"`
	Occupied   int     `json:"occupied"`
	Tombstoned int     `json:"tombstoned"`
	Empty      int     `json:"empty"`
	LoadFactor float64 `json:"load_factor"`
	Collisions int     `json:"collisions"`
	LogLength  int     `json:"collision_log_entries"`
}

// Stats derives occupancy counts by a full slot scan; only the live entry
// count and the lifetime collision counter are maintained incrementally.
func (t *Table) Stats() Statistics {
	occupied, tombstoned := 0, 0
	for _, slot := range t.slots {
		switch {
		case slot == nil:
		case slot.Tombstone:
			tombstoned++
		default:
			occupied++
		}
	}

	return Statistics{
		Capacity:   t.capacity,
		Occupied:   occupied,
		Tombstoned: tombstoned,
		Empty:      t.capacity - occupied - tombstoned,
		LoadFactor: float64(occupied) / float64(t.capacity),
		Collisions: t.collisions,
		LogLength:  len(t.log),
	}
}
