// Package reader decodes transaction records from CSV input. One malformed
// row never aborts a run: invalid rows are skipped with a warning and
// reading continues.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mkravchenko/payments-engine/internal/domain"
)

// errHeader marks the column-header row, which is skipped without warning.
var errHeader = errors.New("header row")

// Reader yields valid transaction records from CSV rows of the form
// `type, client, tx, amount`. Fields are whitespace-trimmed and
// dispute-family rows may omit the amount column entirely.
type Reader struct {
	csv    *csv.Reader
	logger *slog.Logger
}

func New(r io.Reader, logger *slog.Logger) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are ragged: amount is optional
	cr.TrimLeadingSpace = true

	if logger == nil {
		logger = slog.Default()
	}

	return &Reader{csv: cr, logger: logger}
}

// Next returns the next valid record, or io.EOF once input is exhausted.
func (r *Reader) Next() (domain.Transaction, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}

			r.logger.Warn("skipping unreadable row", "error", err)

			continue
		}

		record, err := parseRow(row)
		if err != nil {
			if !errors.Is(err, errHeader) {
				r.logger.Warn("skipping invalid row", "error", err)
			}

			continue
		}

		return record, nil
	}
}

func parseRow(row []string) (domain.Transaction, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("want at least 3 columns, got %d", len(row))
	}

	kind := strings.TrimSpace(row[0])
	if strings.EqualFold(kind, "type") {
		return nil, errHeader
	}

	client64, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("client id %q: %w", row[1], err)
	}

	tx64, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("transaction id %q: %w", row[2], err)
	}

	client := domain.ClientID(client64)
	tx := domain.TransactionID(tx64)

	switch strings.ToLower(kind) {
	case "deposit":
		amount, err := parseAmount(row)
		if err != nil {
			return nil, fmt.Errorf("deposit tx %d: %w", tx, err)
		}

		return domain.Deposit{ClientID: client, TxID: tx, Amount: amount}, nil

	case "withdrawal":
		amount, err := parseAmount(row)
		if err != nil {
			return nil, fmt.Errorf("withdrawal tx %d: %w", tx, err)
		}

		return domain.Withdrawal{ClientID: client, TxID: tx, Amount: amount}, nil

	case "dispute":
		return domain.Dispute{ClientID: client, TxID: tx}, nil

	case "resolve":
		return domain.Resolve{ClientID: client, TxID: tx}, nil

	case "chargeback":
		return domain.Chargeback{ClientID: client, TxID: tx}, nil

	default:
		return nil, fmt.Errorf("unknown transaction type %q", kind)
	}
}

func parseAmount(row []string) (domain.Amount, error) {
	if len(row) < 4 || strings.TrimSpace(row[3]) == "" {
		return domain.Amount{}, errors.New("missing amount")
	}

	return domain.ParseAmount(strings.TrimSpace(row[3]))
}
