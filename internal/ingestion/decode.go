package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// PurchaseDateLayout is the dd/mm/yyyy rendering used by the products API.
const PurchaseDateLayout = "02/01/2006"

// maxIssues bounds the per-record reasons kept in a ParseReport.
const maxIssues = 100

// wireRecord mirrors one element of the API response. Pointers tell a missing
// key or null apart from a zero value.
type wireRecord struct {
	Product      *string          `json:"Produto"`
	Category     *string          `json:"Categoria do Produto"`
	Price        *decimal.Decimal `json:"Preço"`
	Freight      *decimal.Decimal `json:"Frete"`
	PurchaseDate *string          `json:"Data da Compra"`
	Seller       *string          `json:"Vendedor"`
	Location     *string          `json:"Local da compra"`
	Rating       *json.Number     `json:"Avaliação da compra"`
	PaymentType  *string          `json:"Tipo de pagamento"`
	Installments *json.Number     `json:"Quantidade de parcelas"`
	Lat          *float64         `json:"lat"`
	Lon          *float64         `json:"lon"`
}

// Decode parses a response body. The body must be a JSON array; anything else
// is an error. Each element is decoded on its own so a bad element is skipped
// and reported without failing the batch.
func Decode(body []byte) ([]models.SalesRecord, models.ParseReport, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, models.ParseReport{}, errors.New("response body is not a JSON array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, models.ParseReport{}, fmt.Errorf("decode array: %w", err)
	}

	report := models.ParseReport{Total: len(elems), Issues: []models.ParseIssue{}}
	records := make([]models.SalesRecord, 0, len(elems))
	for i, raw := range elems {
		rec, err := decodeRecord(raw)
		if err != nil {
			report.Malformed++
			if len(report.Issues) < maxIssues {
				report.Issues = append(report.Issues, models.ParseIssue{Index: i, Reason: err.Error()})
			}
			continue
		}
		records = append(records, rec)
	}
	report.Accepted = len(records)
	return records, report, nil
}

func decodeRecord(raw json.RawMessage) (models.SalesRecord, error) {
	var w wireRecord
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.SalesRecord{}, fmt.Errorf("invalid element: %w", err)
	}

	var rec models.SalesRecord
	var err error

	if rec.Product, err = requiredText("Produto", w.Product); err != nil {
		return rec, err
	}
	if rec.Category, err = requiredText("Categoria do Produto", w.Category); err != nil {
		return rec, err
	}
	if rec.Seller, err = requiredText("Vendedor", w.Seller); err != nil {
		return rec, err
	}
	if rec.Location, err = requiredText("Local da compra", w.Location); err != nil {
		return rec, err
	}
	if rec.PaymentType, err = requiredText("Tipo de pagamento", w.PaymentType); err != nil {
		return rec, err
	}

	if rec.Price, err = nonNegative("Preço", w.Price); err != nil {
		return rec, err
	}
	if rec.Freight, err = nonNegative("Frete", w.Freight); err != nil {
		return rec, err
	}

	date, err := requiredText("Data da Compra", w.PurchaseDate)
	if err != nil {
		return rec, err
	}
	if rec.PurchaseDate, err = time.ParseInLocation(PurchaseDateLayout, date, time.UTC); err != nil {
		return rec, fmt.Errorf("Data da Compra: %q is not dd/mm/yyyy", date)
	}

	if rec.Rating, err = integer("Avaliação da compra", w.Rating); err != nil {
		return rec, err
	}
	if rec.Rating < 1 || rec.Rating > 5 {
		return rec, fmt.Errorf("Avaliação da compra: %d outside 1..5", rec.Rating)
	}
	if rec.Installments, err = integer("Quantidade de parcelas", w.Installments); err != nil {
		return rec, err
	}
	if rec.Installments < 1 {
		return rec, fmt.Errorf("Quantidade de parcelas: %d is below 1", rec.Installments)
	}

	if w.Lat != nil {
		rec.Lat = *w.Lat
	}
	if w.Lon != nil {
		rec.Lon = *w.Lon
	}
	return rec, nil
}

func requiredText(key string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%s: missing", key)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", fmt.Errorf("%s: blank", key)
	}
	return s, nil
}

func nonNegative(key string, v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, fmt.Errorf("%s: missing", key)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: %s is negative", key, v.String())
	}
	return *v, nil
}

// integer accepts 3 and 3.0 but not 3.5.
func integer(key string, v *json.Number) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: missing", key)
	}
	if n, err := v.Int64(); err == nil {
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("%s: %s is out of range", key, v.String())
		}
		return int(n), nil
	}
	f, err := v.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: %q is not an integer", key, v.String())
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %s is out of range", key, v.String())
	}
	return int(f), nil
}
