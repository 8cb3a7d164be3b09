package catalog

import "context"

// MemorySource serves a fixed list of records. It is used by the CLI's file
// mode and by tests.
type MemorySource struct {
	records []Record
}

// NewMemorySource copies records into a new MemorySource.
func NewMemorySource(records []Record) *MemorySource {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &MemorySource{records: cp}
}

// FetchCatalog returns a copy of the records.
func (m *MemorySource) FetchCatalog(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cp := make([]Record, len(m.records))
	copy(cp, m.records)
	return cp, nil
}
