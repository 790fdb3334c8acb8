package domain

// Legacy clients encode "no selection / no change" and "explicitly
// unassigned" as reserved integers in picker values. Generated ids start at
// 1, so neither sentinel collides with a real entity id. Internally the
// service works with optionals and TicketFilter; the sentinels exist only at
// the wire boundary.
const (
	NoSelectionValue int64 = -1
	UnassignedValue  int64 = 0
)

// OptionalID decodes a sentinel-encoded id: NoSelectionValue maps to nil,
// anything else to the value itself.
func OptionalID(raw int64) *int64 {
	if raw == NoSelectionValue {
		return nil
	}
	v := raw
	return &v
}

// EncodeOptionalID is the inverse of OptionalID.
func EncodeOptionalID(id *int64) int64 {
	if id == nil {
		return NoSelectionValue
	}
	return *id
}

// FilterFromSentinel decodes the legacy staff-filter selector:
// NoSelectionValue means no filter, UnassignedValue means unassigned only,
// any other value filters by that assignee.
func FilterFromSentinel(raw int64) TicketFilter {
	switch raw {
	case NoSelectionValue:
		return AllTickets()
	case UnassignedValue:
		return UnassignedTickets()
	default:
		return TicketsAssignedTo(raw)
	}
}

// Sentinel encodes the filter back to the legacy selector value.
func (f TicketFilter) Sentinel() int64 {
	switch f.Kind {
	case FilterByAssignee:
		return f.AssigneeID
	case FilterUnassigned:
		return UnassignedValue
	default:
		return NoSelectionValue
	}
}
