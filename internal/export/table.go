// Package export turns a filtered record set into the downloadable table
// files: tabela.csv and tabela.xlsx.
package export

import (
	"strconv"
	"strings"

	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/models"
)

// DateLayout is the rendering of purchase dates in both export formats.
const DateLayout = "2006-01-02"

type kind int

const (
	kindText kind = iota
	kindNumber
	kindDate
)

// Column is one exportable field of a SalesRecord, named by its API key.
type Column struct {
	Name  string
	kind  kind
	text  func(models.SalesRecord) string
	value func(models.SalesRecord) any
}

func floatText(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// columns lists every field in the order the products API returns them.
var columns = []Column{
	{Name: "Produto", kind: kindText,
		text:  func(r models.SalesRecord) string { return r.Product },
		value: func(r models.SalesRecord) any { return r.Product }},
	{Name: "Categoria do Produto", kind: kindText,
		text:  func(r models.SalesRecord) string { return r.Category },
		value: func(r models.SalesRecord) any { return r.Category }},
	{Name: "Preço", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return r.Price.String() },
		value: func(r models.SalesRecord) any { return r.Price.InexactFloat64() }},
	{Name: "Frete", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return r.Freight.String() },
		value: func(r models.SalesRecord) any { return r.Freight.InexactFloat64() }},
	{Name: "Data da Compra", kind: kindDate,
		text:  func(r models.SalesRecord) string { return r.PurchaseDate.Format(DateLayout) },
		value: func(r models.SalesRecord) any { return r.PurchaseDate }},
	{Name: "Vendedor", kind: kindText,
		text:  func(r models.SalesRecord) string { return r.Seller },
		value: func(r models.SalesRecord) any { return r.Seller }},
	{Name: "Local da compra", kind: kindText,
		text:  func(r models.SalesRecord) string { return r.Location },
		value: func(r models.SalesRecord) any { return r.Location }},
	{Name: "Avaliação da compra", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return strconv.Itoa(r.Rating) },
		value: func(r models.SalesRecord) any { return r.Rating }},
	{Name: "Tipo de pagamento", kind: kindText,
		text:  func(r models.SalesRecord) string { return r.PaymentType },
		value: func(r models.SalesRecord) any { return r.PaymentType }},
	{Name: "Quantidade de parcelas", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return strconv.Itoa(r.Installments) },
		value: func(r models.SalesRecord) any { return r.Installments }},
	{Name: "lat", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return floatText(r.Lat) },
		value: func(r models.SalesRecord) any { return r.Lat }},
	{Name: "lon", kind: kindNumber,
		text:  func(r models.SalesRecord) string { return floatText(r.Lon) },
		value: func(r models.SalesRecord) any { return r.Lon }},
}

// ColumnNames returns every exportable column name in canonical order.
func ColumnNames() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

// ParseColumns resolves a user-chosen column subset, keeping the caller's
// order. No names selects every column. Unknown or repeated names fail.
func ParseColumns(names []string) ([]Column, error) {
	if len(names) == 0 {
		return append([]Column(nil), columns...), nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]Column, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if seen[n] {
			return nil, apperrors.Validationf("columns", "column %q selected twice", n)
		}
		c, ok := lookupColumn(n)
		if !ok {
			return nil, apperrors.Validationf("columns", "unknown column %q", n)
		}
		seen[n] = true
		out = append(out, c)
	}
	return out, nil
}

func lookupColumn(name string) (Column, bool) {
	for _, c := range columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Table is a filtered record set restricted to a column subset.
type Table struct {
	Columns []Column
	Records []models.SalesRecord
}

// NewTable builds a table; nil columns means every column.
func NewTable(records []models.SalesRecord, cols []Column) Table {
	if len(cols) == 0 {
		cols = append([]Column(nil), columns...)
	}
	return Table{Columns: cols, Records: records}
}

func (t Table) Header() []string {
	h := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		h[i] = c.Name
	}
	return h
}

// Text renders every row as strings, the same cells EncodeCSV writes.
func (t Table) Text() [][]string {
	rows := make([][]string, len(t.Records))
	for i, rec := range t.Records {
		row := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = c.text(rec)
		}
		rows[i] = row
	}
	return rows
}

// ColumnCount and RowCount back the "N rows, M columns" caption of the table view.
func (t Table) ColumnCount() int { return len(t.Columns) }
func (t Table) RowCount() int    { return len(t.Records) }
