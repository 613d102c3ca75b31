package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// OutputPrecision is the number of decimal places rendered for every
// balance column.
const OutputPrecision = 4

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// WriteSnapshot renders the final account snapshot as CSV, one row per
// client in the order given.
func WriteSnapshot(w io.Writer, accounts []domain.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}

	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.StringFixed(OutputPrecision),
			account.Held.StringFixed(OutputPrecision),
			account.Total().StringFixed(OutputPrecision),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
