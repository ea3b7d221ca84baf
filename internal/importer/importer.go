package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tienda/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts products. Expected
// columns: name, description, price, stock. Price is in euros with an
// optional decimal part ("42.95") and is stored as cents.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

type csvRow struct {
	Name  string
	Desc  string
	Cents int64
	Stock int
}

// Run parses CSV rows and inserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	p := domain.Product{
		Name:        row.Name,
		Description: row.Desc,
		PriceCents:  row.Cents,
		Stock:       row.Stock,
	}
	if _, err := i.productRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}

	cents, err := parsePriceCents(pick(record, index, "price"))
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", name, err)
	}

	stock := 0
	if s := pick(record, index, "stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("product %q: invalid stock %q", name, s)
		}
	}

	return &csvRow{
		Name:  name,
		Desc:  pick(record, index, "description"),
		Cents: cents,
		Stock: stock,
	}, nil
}

// parsePriceCents converts a euro amount like "42.95" or "8" to cents.
func parsePriceCents(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("missing price")
	}

	whole, frac, _ := strings.Cut(s, ".")
	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || euros < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	cents := euros * 100
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid price %q: at most two decimal places", s)
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return 0, fmt.Errorf("invalid price %q", s)
		}
	}
	if frac != "" {
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
		if len(frac) == 1 {
			d *= 10
		}
		cents += d
	}
	return cents, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
