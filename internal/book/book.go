package book

// Book maps contact names to records, preserving insertion order.
// Overwriting an existing name keeps its original position.
// Not safe for concurrent use; the command loop is strictly sequential.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book. It lives for the process (or test) duration;
// there is no persistence.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts the record under its name, overwriting any prior record.
func (b *Book) Add(r *Record) {
	name := r.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for name and whether it exists.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the entry for name. An absent name is a silent no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}
