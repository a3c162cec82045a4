package dataset

// UserEncoder assigns dense integer ids to raw user strings in first-seen
// order. Assignments are write-once: a value keeps the id it got on first
// sight for the lifetime of the encoder.
type UserEncoder struct {
	ids   map[string]int
	order []string
}

func NewUserEncoder() *UserEncoder {
	return &UserEncoder{ids: make(map[string]int)}
}

// Encode returns the id for raw, assigning the next unused sequential id
// when raw has not been seen before.
func (e *UserEncoder) Encode(raw string) int {
	if id, ok := e.ids[raw]; ok {
		return id
	}
	id := len(e.order)
	e.ids[raw] = id
	e.order = append(e.order, raw)
	return id
}

// Len returns the number of distinct raw values seen so far.
func (e *UserEncoder) Len() int {
	return len(e.order)
}

// Mapping returns a copy of the raw value to id map.
func (e *UserEncoder) Mapping() map[string]int {
	m := make(map[string]int, len(e.ids))
	for k, v := range e.ids {
		m[k] = v
	}
	return m
}
