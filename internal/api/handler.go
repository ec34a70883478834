package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/dto"
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/guttosm/salespulse/internal/export"
	"github.com/guttosm/salespulse/internal/format"
	"github.com/guttosm/salespulse/internal/middleware"
	"github.com/guttosm/salespulse/internal/service"
	"github.com/shopspring/decimal"
)

const (
	defaultLoadsLimit = 20
	maxLoadsLimit     = 100
)

// Handler provides HTTP handlers for the sales dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the dashboard service with the request context
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// fail records err on the context and writes the error body.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status := apperrors.StatusCode(err)
	msg := "internal server error"
	switch status {
	case http.StatusBadRequest:
		msg = "invalid request parameters"
	case http.StatusBadGateway:
		msg = "products API unavailable"
	default:
		var ee *apperrors.ExportError
		if errors.As(err, &ee) {
			msg = "export failed"
		}
	}
	middleware.AbortWithError(c, status, msg, err)
}

// GetDashboard handles GET /api/v1/dashboard requests.
//
// Query Parameters:
//   - region (string, optional): Brasil, Centro-Oeste, Nordeste, Norte, Sudeste or Sul.
//   - year (int, optional): purchase year; all years when absent.
//   - sellers (string, repeatable, optional): restrict to these sellers.
//   - top_sellers (int, optional): sellers ranked in the sellers tab, 2..10 (default 5).
//
// Responses:
//   - 200 OK: metric cards and the revenue, sales and sellers tabs.
//   - 400 Bad Request: invalid parameters.
//   - 502 Bad Gateway: the products API failed.
//
// GetDashboard godoc
// @Summary      Dashboard tabs
// @Description  Metric cards, revenue/sales charts and top sellers for the selected region, year and sellers
// @Tags         dashboard
// @Produce      json
// @Param        region       query     string    false  "Region"                  example(Sudeste)
// @Param        year         query     int       false  "Purchase year"           example(2022)
// @Param        sellers      query     []string  false  "Sellers"                 collectionFormat(multi)
// @Param        top_sellers  query     int       false  "Top sellers (2..10)"     example(5)
// @Success      200          {object}  dto.DashboardResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502          {object}  dto.ErrorResponse      "Bad Gateway"
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	p, err := parsePredicates(c)
	if err != nil {
		fail(c, err)
		return
	}
	top, present, err := queryInt(c, "top_sellers", service.DefaultTopSellers)
	if err == nil && present && (top < service.MinTopSellers || top > service.MaxTopSellers) {
		err = apperrors.Validationf("top_sellers", "%d outside %d..%d", top, service.MinTopSellers, service.MaxTopSellers)
	}
	if err != nil {
		fail(c, err)
		return
	}

	out, err := h.svc.Dashboard(c.Request.Context(), p, service.Options{TopSellers: top})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(out))
}

// GetRecords handles GET /api/v1/records requests.
//
// Query Parameters:
//   - every predicate read by parsePredicates, plus columns (repeatable).
//
// Responses:
//   - 200 OK: filtered rows rendered as text with row and column counts.
//   - 400 Bad Request: invalid predicate or unknown column.
//   - 502 Bad Gateway: the products API failed.
//
// GetRecords godoc
// @Summary      Filtered table
// @Description  Records matching every predicate, restricted to the selected columns
// @Tags         records
// @Produce      json
// @Param        region              query     string    false  "Region"
// @Param        year                query     int       false  "Purchase year"
// @Param        products            query     []string  false  "Products"       collectionFormat(multi)
// @Param        categories          query     []string  false  "Categories"     collectionFormat(multi)
// @Param        sellers             query     []string  false  "Sellers"        collectionFormat(multi)
// @Param        locations           query     []string  false  "UF codes"       collectionFormat(multi)
// @Param        payment_types       query     []string  false  "Payment types"  collectionFormat(multi)
// @Param        price_min           query     number    false  "Min price"
// @Param        price_max           query     number    false  "Max price"
// @Param        freight_min         query     number    false  "Min freight"
// @Param        freight_max         query     number    false  "Max freight"
// @Param        date_start          query     string    false  "First purchase date (YYYY-MM-DD)"  example(2020-01-01)
// @Param        date_end            query     string    false  "Last purchase date (YYYY-MM-DD)"   example(2023-12-31)
// @Param        rating_min          query     int       false  "Min rating"
// @Param        rating_max          query     int       false  "Max rating"
// @Param        installments_min    query     int       false  "Min installments"
// @Param        installments_max    query     int       false  "Max installments"
// @Param        columns             query     []string  false  "Columns"        collectionFormat(multi)
// @Success      200                 {object}  dto.RecordsResponse  "Success"
// @Failure      400                 {object}  dto.ErrorResponse    "Bad Request"
// @Failure      502                 {object}  dto.ErrorResponse    "Bad Gateway"
// @Router       /api/v1/records [get]
func (h *Handler) GetRecords(c *gin.Context) {
	p, err := parsePredicates(c)
	if err != nil {
		fail(c, err)
		return
	}
	cols, _ := queryList(c, "columns")

	view, err := h.svc.Table(c.Request.Context(), p, cols)
	if err != nil {
		fail(c, err)
		return
	}

	rowCount, colCount := view.Table.RowCount(), view.Table.ColumnCount()
	c.JSON(http.StatusOK, dto.RecordsResponse{
		Columns:     view.Table.Header(),
		Rows:        view.Table.Text(),
		RowCount:    rowCount,
		ColumnCount: colCount,
		Caption:     fmt.Sprintf("The table has %d rows and %d columns", rowCount, colCount),
		ParseReport: view.Report,
	})
}

// ExportRecords handles GET /api/v1/records/export requests.
//
// Query Parameters:
//   - format (string, optional): csv (default) or xlsx.
//   - the same predicates and columns as GetRecords.
//
// ExportRecords godoc
// @Summary      Download the filtered table
// @Description  tabela.csv or tabela.xlsx with the filtered records and selected columns
// @Tags         records
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format   query     string    false  "csv or xlsx"  Enums(csv, xlsx)
// @Param        columns  query     []string  false  "Columns"      collectionFormat(multi)
// @Success      200      {file}    file
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse  "Export failed"
// @Failure      502      {object}  dto.ErrorResponse  "Bad Gateway"
// @Router       /api/v1/records/export [get]
func (h *Handler) ExportRecords(c *gin.Context) {
	f := export.FormatCSV
	if s := c.Query("format"); s != "" {
		parsed, err := export.ParseFormat(s)
		if err != nil {
			fail(c, err)
			return
		}
		f = parsed
	}
	p, err := parsePredicates(c)
	if err != nil {
		fail(c, err)
		return
	}
	cols, _ := queryList(c, "columns")

	b, err := h.svc.Export(c.Request.Context(), p, cols, f)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.FileName()))
	c.Data(http.StatusOK, f.ContentType(), b)
}

// ClearExportCache godoc
// @Summary      Drop cached exports
// @Tags         records
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/v1/records/export/cache [delete]
func (h *Handler) ClearExportCache(c *gin.Context) {
	h.svc.InvalidateExports()
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "export cache cleared"})
}

// GetFilters godoc
// @Summary      Filter options
// @Description  Regions, distinct values and min/max bounds of the loaded data for the table page
// @Tags         records
// @Produce      json
// @Success      200  {object}  service.FilterOptions
// @Failure      502  {object}  dto.ErrorResponse  "Bad Gateway"
// @Router       /api/v1/filters [get]
func (h *Handler) GetFilters(c *gin.Context) {
	opts, err := h.svc.Filters(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GetLoads godoc
// @Summary      Recent loads
// @Description  Most recent fetches of the products API, newest first; empty when storage is disabled
// @Tags         loads
// @Produce      json
// @Param        limit  query     int  false  "Entries (1..100)"  example(20)
// @Success      200    {object}  dto.LoadsResponse
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/loads [get]
func (h *Handler) GetLoads(c *gin.Context) {
	limit, _, err := queryInt(c, "limit", defaultLoadsLimit)
	if err == nil && (limit < 1 || limit > maxLoadsLimit) {
		err = apperrors.Validationf("limit", "%d outside 1..%d", limit, maxLoadsLimit)
	}
	if err != nil {
		fail(c, err)
		return
	}
	loads, err := h.svc.Loads(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	if loads == nil {
		loads = []models.LoadLog{}
	}
	c.JSON(http.StatusOK, dto.LoadsResponse{Loads: loads})
}

func toDashboardResponse(d service.Dashboard) dto.DashboardResponse {
	return dto.DashboardResponse{
		Metrics: dto.MetricsResponse{
			Revenue:      d.Metrics.Revenue,
			RevenueLabel: d.Metrics.RevenueLabel,
			Sales:        d.Metrics.Sales,
			SalesLabel:   d.Metrics.SalesLabel,
		},
		Revenue: dto.RevenueTabResponse{
			ByLocation:   d.Revenue.ByLocation,
			TopLocations: bars(d.Revenue.TopLocations, func(r models.LocationRevenue) (string, decimal.Decimal) { return r.Location, r.Revenue }, "R$"),
			Monthly:      d.Revenue.Monthly,
			ByCategory:   bars(d.Revenue.ByCategory, func(r models.CategoryRevenue) (string, decimal.Decimal) { return r.Category, r.Revenue }, "R$"),
		},
		Sales: dto.SalesTabResponse{
			ByLocation:   d.Sales.ByLocation,
			TopLocations: bars(d.Sales.TopLocations, func(r models.LocationSales) (string, decimal.Decimal) { return r.Location, decimal.NewFromInt(int64(r.Sales)) }, ""),
			Monthly:      d.Sales.Monthly,
			ByCategory:   bars(d.Sales.ByCategory, func(r models.CategorySales) (string, decimal.Decimal) { return r.Category, decimal.NewFromInt(int64(r.Sales)) }, ""),
		},
		Sellers: dto.SellersTabResponse{
			Top:     d.Sellers.Top,
			BySum:   bars(d.Sellers.BySum, func(r models.SellerSummary) (string, decimal.Decimal) { return r.Seller, r.Sum }, "R$"),
			ByCount: bars(d.Sellers.ByCount, func(r models.SellerSummary) (string, decimal.Decimal) { return r.Seller, decimal.NewFromInt(int64(r.Count)) }, ""),
		},
		ParseReport: d.Report,
	}
}

// bars maps table rows to labelled bar points, keeping their order.
func bars[T any](rows []T, kv func(T) (string, decimal.Decimal), prefix string) []dto.BarPoint {
	out := make([]dto.BarPoint, 0, len(rows))
	for _, r := range rows {
		k, v := kv(r)
		out = append(out, dto.BarPoint{Key: k, Value: v, Label: format.Plain(v.InexactFloat64(), prefix)})
	}
	return out
}
