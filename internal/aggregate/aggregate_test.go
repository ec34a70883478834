package aggregate

import (
	"testing"
	"time"

	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func rec(seller, category, location string, price string, date time.Time) models.SalesRecord {
	return models.SalesRecord{
		Seller: seller, Category: category, Location: location,
		Price: decimal.RequireFromString(price), PurchaseDate: date,
	}
}

func TestEmptyInput(t *testing.T) {
	if got := RevenueByLocation(nil); got == nil || len(got) != 0 {
		t.Fatalf("RevenueByLocation(nil) = %v", got)
	}
	if got := SalesByLocation(nil); got == nil || len(got) != 0 {
		t.Fatalf("SalesByLocation(nil) = %v", got)
	}
	if got := RevenueByCategory(nil); got == nil || len(got) != 0 {
		t.Fatalf("RevenueByCategory(nil) = %v", got)
	}
	if got := SalesByCategory(nil); got == nil || len(got) != 0 {
		t.Fatalf("SalesByCategory(nil) = %v", got)
	}
	rm := RevenueByMonth(nil)
	if rm.Rows == nil || len(rm.Rows) != 0 || !rm.Max.IsZero() {
		t.Fatalf("RevenueByMonth(nil) = %+v", rm)
	}
	sm := SalesByMonth(nil)
	if sm.Rows == nil || len(sm.Rows) != 0 || sm.Max != 0 {
		t.Fatalf("SalesByMonth(nil) = %+v", sm)
	}
	st := BySeller(nil)
	if len(st.Rows) != 0 || len(st.TopBySum(5)) != 0 || st.TopByCount(5) == nil {
		t.Fatalf("BySeller(nil) = %+v", st)
	}
	if !TotalRevenue(nil).IsZero() {
		t.Fatalf("TotalRevenue(nil) should be zero")
	}
}

func TestByMonth_ChronologicalAcrossYears(t *testing.T) {
	records := []models.SalesRecord{
		rec("A", "c", "SP", "30", day(2023, time.January, 20)),
		rec("A", "c", "SP", "10", day(2022, time.January, 15)),
		rec("A", "c", "SP", "20", day(2022, time.February, 10)),
		rec("A", "c", "SP", "5", day(2022, time.January, 31)),
	}

	rev := RevenueByMonth(records)
	want := []struct {
		year    int
		month   time.Month
		name    string
		revenue string
		sales   int
	}{
		{2022, time.January, "January", "15", 2},
		{2022, time.February, "February", "20", 1},
		{2023, time.January, "January", "30", 1},
	}
	if len(rev.Rows) != len(want) {
		t.Fatalf("want %d rows, got %d: %+v", len(want), len(rev.Rows), rev.Rows)
	}
	sales := SalesByMonth(records)
	for i, w := range want {
		r := rev.Rows[i]
		if r.Year != w.year || r.Month != w.month || r.MonthName != w.name || !r.Revenue.Equal(decimal.RequireFromString(w.revenue)) {
			t.Fatalf("row %d: got %+v, want %+v", i, r, w)
		}
		if s := sales.Rows[i]; s.Year != w.year || s.Month != w.month || s.Sales != w.sales {
			t.Fatalf("sales row %d: got %+v, want %+v", i, s, w)
		}
	}
	if !rev.Max.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("revenue max = %s, want 30", rev.Max)
	}
	if sales.Max != 2 {
		t.Fatalf("sales max = %d, want 2", sales.Max)
	}
}

func TestBySeller(t *testing.T) {
	d := day(2022, time.May, 1)
	records := []models.SalesRecord{
		rec("A", "c", "SP", "10", d),
		rec("B", "c", "SP", "5", d),
		rec("A", "c", "SP", "20", d),
		rec("B", "c", "SP", "5", d),
		rec("A", "c", "SP", "30", d),
	}
	table := BySeller(records)
	if len(table.Rows) != 2 {
		t.Fatalf("want 2 sellers, got %d", len(table.Rows))
	}
	a, b := table.Rows[0], table.Rows[1]
	if a.Seller != "A" || !a.Sum.Equal(decimal.NewFromInt(60)) || a.Count != 3 {
		t.Fatalf("unexpected A: %+v", a)
	}
	if b.Seller != "B" || !b.Sum.Equal(decimal.NewFromInt(10)) || b.Count != 2 {
		t.Fatalf("unexpected B: %+v", b)
	}
	if top := table.TopBySum(1); len(top) != 1 || top[0].Seller != "A" {
		t.Fatalf("TopBySum(1) = %+v", top)
	}
	if top := table.TopByCount(1); len(top) != 1 || top[0].Seller != "A" {
		t.Fatalf("TopByCount(1) = %+v", top)
	}
	if top := table.TopBySum(10); len(top) != 2 {
		t.Fatalf("TopBySum(10) should cap at table size, got %d", len(top))
	}
	if table.Rows[0].Seller != "A" {
		t.Fatalf("top must not reorder the underlying table")
	}
}

func TestByLocation_CoordinatesAndOrder(t *testing.T) {
	d := day(2022, time.May, 1)
	sp1 := rec("A", "c", "SP", "100", d)
	sp1.Lat, sp1.Lon = -22.19, -48.79
	sp2 := rec("A", "c", "SP", "50", d)
	sp2.Lat, sp2.Lon = -22.19, -48.79
	rj := rec("A", "c", "RJ", "200", d)
	rj.Lat, rj.Lon = -22.25, -42.66
	ba := rec("A", "c", "BA", "75", d)

	rev := RevenueByLocation([]models.SalesRecord{sp1, rj, sp2, ba})
	if len(rev) != 3 {
		t.Fatalf("want 3 locations, got %d", len(rev))
	}
	if rev[0].Location != "RJ" || rev[1].Location != "SP" || rev[2].Location != "BA" {
		t.Fatalf("unexpected order: %+v", rev)
	}
	if rev[1].Lat != -22.19 || rev[1].Lon != -48.79 || !rev[1].Revenue.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected SP row: %+v", rev[1])
	}

	sales := SalesByLocation([]models.SalesRecord{sp1, rj, sp2, ba})
	if sales[0].Location != "SP" || sales[0].Sales != 2 {
		t.Fatalf("unexpected first sales row: %+v", sales[0])
	}
	// BA and RJ tie on one sale each: ascending name breaks the tie
	if sales[1].Location != "BA" || sales[2].Location != "RJ" {
		t.Fatalf("unexpected tie-break: %+v", sales)
	}
}

func TestByCategory_TotalsConservation(t *testing.T) {
	d := day(2021, time.June, 3)
	records := []models.SalesRecord{
		rec("A", "moveis", "SP", "1234.56", d),
		rec("B", "eletronicos", "RJ", "0.10", d),
		rec("C", "moveis", "SP", "0.20", d),
		rec("D", "livros", "BA", "99.99", d),
		rec("E", "eletronicos", "BA", "4500.01", d),
	}
	cats := RevenueByCategory(records)
	sum := decimal.Zero
	for _, c := range cats {
		sum = sum.Add(c.Revenue)
	}
	if !sum.Equal(TotalRevenue(records)) {
		t.Fatalf("category sums %s != total %s", sum, TotalRevenue(records))
	}
	if !sum.Equal(decimal.RequireFromString("5834.86")) {
		t.Fatalf("unexpected total %s", sum)
	}
	if cats[0].Category != "eletronicos" {
		t.Fatalf("descending order broken: %+v", cats)
	}

	counts := SalesByCategory(records)
	n := 0
	for _, c := range counts {
		n += c.Sales
	}
	if n != len(records) {
		t.Fatalf("category counts %d != %d records", n, len(records))
	}
	if counts[0].Category != "eletronicos" || counts[1].Category != "moveis" || counts[2].Category != "livros" {
		t.Fatalf("unexpected count order: %+v", counts)
	}
}
