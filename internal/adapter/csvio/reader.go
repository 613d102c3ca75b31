// Package csvio adapts CSV byte streams to and from the engine's event
// and snapshot types.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// Reader decodes events from a CSV stream one record at a time. The
// input is never materialized, so arbitrarily large files stream
// through in constant memory.
//
// Expected columns: type, client, tx, amount. The amount column is
// optional and may be missing entirely on dispute lifecycle rows. A
// header row is skipped when present.
type Reader struct {
	csv       *csv.Reader
	skippedHd bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Next returns the next event. io.EOF signals end of stream; records
// that cannot be decoded return an error wrapping
// domain.ErrMalformedRecord so the caller can skip them.
func (r *Reader) Next() (domain.Event, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
			}
			return domain.Event{}, err
		}

		if !r.skippedHd {
			r.skippedHd = true
			if strings.TrimSpace(record[0]) == "type" {
				continue
			}
		}

		return decodeRecord(record)
	}
}

func decodeRecord(record []string) (domain.Event, error) {
	if len(record) < 3 {
		return domain.Event{}, fmt.Errorf("%w: expected at least 3 fields, got %d",
			domain.ErrMalformedRecord, len(record))
	}

	typ, err := domain.ParseEventType(record[0])
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}

	client, err := domain.ParseClientID(record[1])
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: client %q", domain.ErrMalformedRecord, record[1])
	}

	tx, err := domain.ParseTransactionID(record[2])
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: tx %q", domain.ErrMalformedRecord, record[2])
	}

	ev := domain.Event{Type: typ, Client: client, Tx: tx}
	if len(record) > 3 {
		ev.Amount, err = domain.ParseAmount(record[3])
		if err != nil {
			return domain.Event{}, fmt.Errorf("%w: amount %q", domain.ErrMalformedRecord, record[3])
		}
	}
	return ev, nil
}

// SliceSource replays an in-memory slice of events. It exists for
// tests and for callers that already hold decoded events.
type SliceSource struct {
	events []domain.Event
	idx    int
}

// NewSliceSource creates a SliceSource over events.
func NewSliceSource(events []domain.Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next returns the next event or io.EOF.
func (s *SliceSource) Next() (domain.Event, error) {
	if s.idx >= len(s.events) {
		return domain.Event{}, io.EOF
	}
	ev := s.events[s.idx]
	s.idx++
	return ev, nil
}
