package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobops/backoffice/internal/auth"
	"github.com/imobops/backoffice/internal/http/middleware"
	"github.com/imobops/backoffice/internal/model"
	"github.com/imobops/backoffice/internal/repository"
	"github.com/imobops/backoffice/internal/service"
)

type stubSales struct{}

func (stubSales) Totals(context.Context) (repository.SalesTotalsRow, error) {
	return repository.SalesTotalsRow{
		TotalValue: decimal.RequireFromString("500000.00"),
		TotalUnits: 2,
		AvgValue:   decimal.RequireFromString("500000.00"),
	}, nil
}

func (stubSales) TotalsByBrokerDevelopment(context.Context) ([]repository.BrokerDevelopmentSalesRow, error) {
	return nil, nil
}

func (stubSales) MonthlyTotals(context.Context) ([]repository.MonthlySalesRow, error) {
	return nil, nil
}

func (stubSales) TotalsByDevelopment(context.Context) ([]repository.DevelopmentTotalRow, error) {
	return nil, nil
}

func (stubSales) ListDevelopments(context.Context) ([]model.Development, error) {
	return nil, nil
}

type stubReceivables struct{}

func (stubReceivables) Totals(context.Context) (repository.ReceivablesTotalsRow, error) {
	return repository.ReceivablesTotalsRow{}, nil
}

func (stubReceivables) ListUnpaid(context.Context) ([]model.Installment, error) {
	return nil, nil
}

func (stubReceivables) PortfolioByBroker(context.Context) ([]repository.BrokerPortfolioRow, error) {
	return nil, nil
}

func (stubReceivables) DelinquentByBroker(context.Context) ([]repository.BrokerDelinquencyRow, error) {
	return nil, nil
}

type stubPurchases struct{}

func (stubPurchases) Total(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubPurchases) TotalsByDevelopment(context.Context) ([]repository.DevelopmentCostRow, error) {
	return nil, nil
}

func (stubPurchases) TotalsBySupplier(context.Context) ([]repository.SupplierCostRow, error) {
	return nil, nil
}

type stubPlanning struct{}

func (stubPlanning) CostsByDevelopment(context.Context) ([]repository.DevelopmentPlanningRow, error) {
	return nil, nil
}

type stubExcel struct{}

func (stubExcel) Generate(model.OverviewReport) ([]byte, error) {
	return []byte("workbook-bytes"), nil
}

type stubPDF struct{}

func (stubPDF) Generate(model.OverviewReport) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

const testSecret = "test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dashboard := service.NewDashboardService(
		stubSales{}, stubReceivables{}, stubPurchases{}, stubPlanning{}, stubExcel{}, stubPDF{},
	)
	handler := NewHandler(dashboard, zerolog.Nop())
	authMiddleware := middleware.Auth(auth.NewParser(testSecret))
	return NewRouter(handler, authMiddleware, "test", nil)
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := auth.Claims{
		Email: "ana@imobops.com.br",
		Role:  string(model.RoleAnalyst),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestOverviewRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOverviewReturnsReport(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil)
	request.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"comercial"`)
	assert.Contains(t, body, `"carteira"`)
	assert.Contains(t, body, `"compras"`)
	assert.Contains(t, body, `"estrategicos"`)
	assert.Contains(t, body, `"ticket_medio_por_unidade":"250000"`)
}

func TestOverviewRejectsBadAsOf(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/overview?as_of=yesterday", nil)
	request.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestExportExcelRoute(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/export?as_of=2026-03-15", nil)
	request.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="painel-20260315.xlsx"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "workbook-bytes", recorder.Body.String())
}

func TestExportPDFRoute(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/export/pdf?as_of=2026-03-15", nil)
	request.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="painel-20260315.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4", recorder.Body.String())
}

func TestExportRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/export", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHealthzIsPublic(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
