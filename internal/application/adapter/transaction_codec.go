package adapter

import (
	"io"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionCodec reads and writes the transaction export format.
type TransactionCodec interface {
	// Encode writes the transactions, in the given order, to w.
	Encode(w io.Writer, transactions []*entity.Transaction) error

	// Decode reads transactions previously written by Encode.
	Decode(r io.Reader) ([]*entity.Transaction, error)

	// ContentType returns the MIME type of the encoded output.
	ContentType() string

	// FileExtension returns the file extension, without the dot, for encoded output.
	FileExtension() string
}
