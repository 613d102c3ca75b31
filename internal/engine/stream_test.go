package engine_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin00001313/TransactionProcessing/internal/adapter/csvio"
	"github.com/martin00001313/TransactionProcessing/internal/domain"
	"github.com/martin00001313/TransactionProcessing/internal/engine"
)

func TestProcessor_ConsumeCSVStream(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,10.0",
		"deposit,2,2,20.0",
		"withdrawal,1,3,2.5",
		"garbage row that does not decode,,",
		"dispute,2,2,",
		"chargeback,2,2,",
	}, "\n")

	p := newProcessor(engine.Policy{})
	require.NoError(t, p.Consume(csvio.NewReader(strings.NewReader(input))))

	requireBalances(t, p, 1, "7.5", "0", false)
	requireBalances(t, p, 2, "0", "0", true)
}

func TestProcessor_ConsumeStopsOnBrokenSource(t *testing.T) {
	srcErr := errors.New("connection reset")
	p := newProcessor(engine.Policy{})

	err := p.Consume(&brokenSource{failAfter: 1, err: srcErr})
	require.ErrorIs(t, err, srcErr)

	// The event read before the failure was still applied.
	requireBalances(t, p, 1, "5", "0", false)
}

func TestProcessor_ConsumeEmptySource(t *testing.T) {
	p := newProcessor(engine.Policy{})
	require.NoError(t, p.Consume(csvio.NewSliceSource(nil)))
	assert.Empty(t, p.Snapshot())
}

type brokenSource struct {
	served    int
	failAfter int
	err       error
}

func (s *brokenSource) Next() (domain.Event, error) {
	if s.served >= s.failAfter {
		return domain.Event{}, s.err
	}
	s.served++
	return deposit(1, domain.TransactionID(s.served), "5"), nil
}

var _ engine.Source = (*brokenSource)(nil)

// Guard against the csv adapter drifting away from the engine contract.
var _ engine.Source = (*csvio.Reader)(nil)
