package adapters

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CSVDateLayout is the timestamp layout of the Date column, always in UTC.
const CSVDateLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"ID", "Amount", "Title", "Category", "Date", "IsExpense"}

// csvCodec reads and writes the transaction export format.
type csvCodec struct{}

// NewCSVCodec creates the CSV transaction codec.
func NewCSVCodec() adapter.TransactionCodec {
	return csvCodec{}
}

func (csvCodec) ContentType() string   { return "text/csv; charset=utf-8" }
func (csvCodec) FileExtension() string { return "csv" }

// Encode writes a header row followed by one row per transaction.
// The Title column is always quoted; other fields are quoted only when needed.
func (csvCodec) Encode(w io.Writer, transactions []*entity.Transaction) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(csvHeader, ",") + "\n")
	for _, t := range transactions {
		fields := []string{
			csvField(t.ID.String(), false),
			csvField(decimal.NewFromFloat(t.Amount).String(), false),
			csvField(t.Title, true),
			csvField(t.Category, false),
			csvField(t.Date.UTC().Format(CSVDateLayout), false),
			csvField(strconv.FormatBool(t.IsExpense), false),
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// csvField escapes one field, doubling embedded quotes.
func csvField(s string, quote bool) string {
	if !quote && !strings.ContainsAny(s, ",\"\r\n") && strings.TrimSpace(s) == s {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode parses rows written by Encode. Rows with a missing or invalid ID get a fresh one.
func (csvCodec) Decode(r io.Reader) ([]*entity.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if !strings.EqualFold(strings.TrimPrefix(header[0], "\ufeff"), csvHeader[0]) {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(header, ","))
	}

	var transactions []*entity.Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		t, err := decodeCSVRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func decodeCSVRecord(record []string) (*entity.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", record[1])
	}
	date, err := time.ParseInLocation(CSVDateLayout, strings.TrimSpace(record[4]), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", record[4])
	}
	isExpense, err := strconv.ParseBool(strings.TrimSpace(record[5]))
	if err != nil {
		return nil, fmt.Errorf("invalid IsExpense %q", record[5])
	}

	t := entity.NewTransaction(uuid.Nil, amount.Abs().InexactFloat64(), record[2], strings.TrimSpace(record[3]), date, isExpense)
	if id, err := uuid.Parse(strings.TrimSpace(record[0])); err == nil {
		t.ID = id
	}
	return t, nil
}

// jsonCodec writes transactions as a JSON array with unix-second dates.
type jsonCodec struct{}

// NewJSONCodec creates the JSON transaction codec.
func NewJSONCodec() adapter.TransactionCodec {
	return jsonCodec{}
}

type jsonTransaction struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Date      float64 `json:"date"`
	IsExpense bool    `json:"isExpense"`
}

func (jsonCodec) ContentType() string   { return "application/json" }
func (jsonCodec) FileExtension() string { return "json" }

func (jsonCodec) Encode(w io.Writer, transactions []*entity.Transaction) error {
	out := make([]jsonTransaction, len(transactions))
	for i, t := range transactions {
		out[i] = jsonTransaction{
			ID:        strings.ToUpper(t.ID.String()),
			Amount:    t.Amount,
			Title:     t.Title,
			Category:  t.Category,
			Date:      float64(t.Date.UnixMilli()) / 1000,
			IsExpense: t.IsExpense,
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func (jsonCodec) Decode(r io.Reader) ([]*entity.Transaction, error) {
	var in []jsonTransaction
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	transactions := make([]*entity.Transaction, 0, len(in))
	for _, j := range in {
		date := time.UnixMilli(int64(j.Date * 1000)).UTC()
		t := entity.NewTransaction(uuid.Nil, j.Amount, j.Title, j.Category, date, j.IsExpense)
		if id, err := uuid.Parse(j.ID); err == nil {
			t.ID = id
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// CodecForFormat returns the codec registered under format ("csv" or "json").
func CodecForFormat(format string) (adapter.TransactionCodec, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "csv":
		return NewCSVCodec(), true
	case "json":
		return NewJSONCodec(), true
	}
	return nil, false
}
