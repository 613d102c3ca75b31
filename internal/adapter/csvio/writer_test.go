package csvio

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

func TestWriteSnapshot(t *testing.T) {
	accounts := []domain.Account{
		{Client: 1, Available: decimal.NewFromFloat(1.5), Held: decimal.Zero},
		{Client: 2, Available: decimal.NewFromInt(10), Held: decimal.NewFromFloat(2.25), Locked: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, accounts))

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.0000,1.5000,false\n" +
		"2,10.0000,2.2500,12.2500,true\n"
	require.Equal(t, want, buf.String())
}

func TestWriteSnapshot_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, nil))
	require.Equal(t, "client,available,held,total,locked\n", buf.String())
}
