package engine

import (
	"errors"
	"io"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// Source is a finite, lazily-produced sequence of event records. Next
// returns io.EOF when the stream is exhausted and a
// domain.ErrMalformedRecord-wrapped error for a record that could not
// be decoded; any other error means the source itself is broken.
type Source interface {
	Next() (domain.Event, error)
}

// Consume folds the whole source into the processor, one event at a
// time in input order. Malformed records and rejected events are
// dropped and processing continues; only a broken source aborts the
// run.
func (p *Processor) Consume(src Source) error {
	for {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, domain.ErrMalformedRecord) {
				p.logger.Debug().Err(err).Msg("record dropped")
				continue
			}
			return err
		}

		// Rejections are expected business outcomes, already logged
		// and counted inside Apply.
		_ = p.Apply(ev)
	}
}
