package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imobops/backoffice/internal/model"
	"github.com/imobops/backoffice/internal/repository"
)

type SalesStore interface {
	Totals(ctx context.Context) (repository.SalesTotalsRow, error)
	TotalsByBrokerDevelopment(ctx context.Context) ([]repository.BrokerDevelopmentSalesRow, error)
	MonthlyTotals(ctx context.Context) ([]repository.MonthlySalesRow, error)
	TotalsByDevelopment(ctx context.Context) ([]repository.DevelopmentTotalRow, error)
	ListDevelopments(ctx context.Context) ([]model.Development, error)
}

type ReceivablesStore interface {
	Totals(ctx context.Context) (repository.ReceivablesTotalsRow, error)
	ListUnpaid(ctx context.Context) ([]model.Installment, error)
	PortfolioByBroker(ctx context.Context) ([]repository.BrokerPortfolioRow, error)
	DelinquentByBroker(ctx context.Context) ([]repository.BrokerDelinquencyRow, error)
}

type PurchasesStore interface {
	Total(ctx context.Context) (decimal.Decimal, error)
	TotalsByDevelopment(ctx context.Context) ([]repository.DevelopmentCostRow, error)
	TotalsBySupplier(ctx context.Context) ([]repository.SupplierCostRow, error)
}

type PlanningStore interface {
	CostsByDevelopment(ctx context.Context) ([]repository.DevelopmentPlanningRow, error)
}

type ExcelGenerator interface {
	Generate(report model.OverviewReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.OverviewReport) ([]byte, error)
}

type DashboardService struct {
	sales       SalesStore
	receivables ReceivablesStore
	purchases   PurchasesStore
	planning    PlanningStore
	excel       ExcelGenerator
	pdf         PDFGenerator
}

func NewDashboardService(
	sales SalesStore,
	receivables ReceivablesStore,
	purchases PurchasesStore,
	planning PlanningStore,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *DashboardService {
	return &DashboardService{
		sales:       sales,
		receivables: receivables,
		purchases:   purchases,
		planning:    planning,
		excel:       excel,
		pdf:         pdf,
	}
}

// BuildOverview assembles the full dashboard report as of the given day.
// A zero asOf means today. The build is a pure read: one snapshot of the
// store, no writes, every empty aggregate resolved to zero.
func (s *DashboardService) BuildOverview(ctx context.Context, asOf time.Time) (*model.OverviewReport, error) {
	asOf = resolveAsOf(asOf)

	commercial, err := s.buildCommercial(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := s.buildReceivables(ctx, asOf)
	if err != nil {
		return nil, err
	}
	purchasing, err := s.buildPurchasing(ctx)
	if err != nil {
		return nil, err
	}
	strategic, err := s.buildStrategic(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.OverviewReport{
		Commercial:  commercial,
		Receivables: receivables,
		Purchasing:  purchasing,
		Strategic:   strategic,
		Charts:      buildCharts(commercial, receivables, purchasing),
	}
	return report, nil
}

func (s *DashboardService) buildCommercial(ctx context.Context) (model.CommercialReport, error) {
	totals, err := s.sales.Totals(ctx)
	if err != nil {
		return model.CommercialReport{}, err
	}

	ticketPerUnit := decimal.Zero
	if totals.TotalUnits != 0 {
		ticketPerUnit = totals.TotalValue.Div(decimal.NewFromInt(totals.TotalUnits))
	}

	byBroker, err := s.sales.TotalsByBrokerDevelopment(ctx)
	if err != nil {
		return model.CommercialReport{}, err
	}
	salesByBroker := make([]model.BrokerDevelopmentSales, 0, len(byBroker))
	for _, row := range byBroker {
		salesByBroker = append(salesByBroker, model.BrokerDevelopmentSales{
			BrokerID:        row.BrokerID,
			BrokerName:      row.BrokerName,
			DevelopmentID:   row.DevelopmentID,
			DevelopmentName: row.DevelopmentName,
			TotalValue:      row.TotalValue,
			TotalUnits:      row.TotalUnits,
		})
	}

	monthly, err := s.sales.MonthlyTotals(ctx)
	if err != nil {
		return model.CommercialReport{}, err
	}

	report := model.CommercialReport{
		TotalValue:    totals.TotalValue,
		TotalUnits:    totals.TotalUnits,
		AverageTicket: totals.AvgValue,
		TicketPerUnit: ticketPerUnit,
		SalesByBroker: salesByBroker,
		Comparatives: model.SalesComparatives{
			Monthly:    monthlySeries(monthly),
			Bimonthly:  regroupMonthly(monthly, bimonthKey, bimonthLabel),
			Semiannual: regroupMonthly(monthly, semesterKey, semesterLabel),
		},
	}
	return report, nil
}

func (s *DashboardService) buildReceivables(ctx context.Context, asOf time.Time) (model.ReceivablesReport, error) {
	totals, err := s.receivables.Totals(ctx)
	if err != nil {
		return model.ReceivablesReport{}, err
	}

	unpaid, err := s.receivables.ListUnpaid(ctx)
	if err != nil {
		return model.ReceivablesReport{}, err
	}

	delinquentTotal := decimal.Zero
	byRange := map[string]decimal.Decimal{}
	for _, installment := range unpaid {
		balance := installment.Balance()
		delinquentTotal = delinquentTotal.Add(balance)
		rng := agingRange(installment.DaysLate(asOf))
		byRange[rng] = byRange[rng].Add(balance)
	}

	buckets := make([]model.AgingBucket, 0, len(agingRanges))
	for _, rng := range agingRanges {
		amount := byRange[rng]
		if amount.IsZero() {
			continue
		}
		buckets = append(buckets, model.AgingBucket{Range: rng, Amount: amount})
	}

	portfolio, err := s.receivables.PortfolioByBroker(ctx)
	if err != nil {
		return model.ReceivablesReport{}, err
	}
	delinquent, err := s.receivables.DelinquentByBroker(ctx)
	if err != nil {
		return model.ReceivablesReport{}, err
	}
	delinquentLookup := make(map[string]decimal.Decimal, len(delinquent))
	for _, row := range delinquent {
		delinquentLookup[row.BrokerName] = row.Total
	}

	byBroker := make([]model.BrokerDelinquency, 0, len(portfolio))
	for _, row := range portfolio {
		value := delinquentLookup[row.BrokerName]
		byBroker = append(byBroker, model.BrokerDelinquency{
			Broker:          row.BrokerName,
			PortfolioTotal:  row.TotalAmount,
			DelinquentValue: value,
			Rate:            percentage(value, row.TotalAmount),
		})
	}

	return model.ReceivablesReport{
		DelinquencyRate:     percentage(delinquentTotal, totals.TotalAmount),
		DelinquencyByAge:    buckets,
		AmountReceived:      totals.TotalPaid,
		BalanceDue:          totals.TotalAmount.Sub(totals.TotalPaid),
		DelinquencyByBroker: byBroker,
	}, nil
}

func (s *DashboardService) buildPurchasing(ctx context.Context) (model.PurchasingReport, error) {
	total, err := s.purchases.Total(ctx)
	if err != nil {
		return model.PurchasingReport{}, err
	}

	byDevelopment, err := s.purchases.TotalsByDevelopment(ctx)
	if err != nil {
		return model.PurchasingReport{}, err
	}
	costs := make([]model.DevelopmentCost, 0, len(byDevelopment))
	for _, row := range byDevelopment {
		costs = append(costs, model.DevelopmentCost{
			DevelopmentID:   row.DevelopmentID,
			DevelopmentName: row.DevelopmentName,
			Total:           row.Total,
		})
	}

	bySupplier, err := s.purchases.TotalsBySupplier(ctx)
	if err != nil {
		return model.PurchasingReport{}, err
	}
	grandTotal := decimal.Zero
	for _, row := range bySupplier {
		grandTotal = grandTotal.Add(row.Total)
	}
	share := make([]model.SupplierShare, 0, len(bySupplier))
	for _, row := range bySupplier {
		share = append(share, model.SupplierShare{
			Supplier: row.SupplierName,
			Value:    row.Total,
			Share:    percentage(row.Total, grandTotal),
		})
	}

	return model.PurchasingReport{
		TotalCost:         total,
		CostByDevelopment: costs,
		SupplierShare:     share,
	}, nil
}

func (s *DashboardService) buildStrategic(ctx context.Context) (model.StrategicReport, error) {
	planning, err := s.planning.CostsByDevelopment(ctx)
	if err != nil {
		return model.StrategicReport{}, err
	}
	planned := make([]model.DevelopmentPlanning, 0, len(planning))
	for _, row := range planning {
		planned = append(planned, model.DevelopmentPlanning{
			DevelopmentName: row.DevelopmentName,
			PlannedCost:     row.PlannedCost,
			ActualCost:      row.ActualCost,
			Variance:        row.ActualCost.Sub(row.PlannedCost),
		})
	}

	developments, err := s.sales.ListDevelopments(ctx)
	if err != nil {
		return model.StrategicReport{}, err
	}
	salesByDevelopment, err := s.sales.TotalsByDevelopment(ctx)
	if err != nil {
		return model.StrategicReport{}, err
	}
	costsByDevelopment, err := s.purchases.TotalsByDevelopment(ctx)
	if err != nil {
		return model.StrategicReport{}, err
	}

	salesLookup := make(map[string]decimal.Decimal, len(salesByDevelopment))
	for _, row := range salesByDevelopment {
		salesLookup[row.DevelopmentID.String()] = row.Total
	}
	costLookup := make(map[string]decimal.Decimal, len(costsByDevelopment))
	for _, row := range costsByDevelopment {
		costLookup[row.DevelopmentID.String()] = row.Total
	}

	margins := make([]model.DevelopmentMargin, 0, len(developments))
	for _, development := range developments {
		sales := salesLookup[development.ID.String()]
		costs := costLookup[development.ID.String()]
		margins = append(margins, model.DevelopmentMargin{
			DevelopmentName: development.Name,
			Sales:           sales,
			Costs:           costs,
			Margin:          sales.Sub(costs),
		})
	}

	return model.StrategicReport{
		PlannedVsActual:     planned,
		MarginByDevelopment: margins,
	}, nil
}

var agingRanges = [4]string{"0-30", "31-60", "61-120", "120+"}

func agingRange(daysLate int) string {
	switch {
	case daysLate <= 30:
		return agingRanges[0]
	case daysLate <= 60:
		return agingRanges[1]
	case daysLate <= 120:
		return agingRanges[2]
	default:
		return agingRanges[3]
	}
}

var hundred = decimal.NewFromInt(100)

// percentage returns part/total*100, zero when the denominator is zero.
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

func buildCharts(
	commercial model.CommercialReport,
	receivables model.ReceivablesReport,
	purchasing model.PurchasingReport,
) model.ChartsPayload {
	charts := model.ChartsPayload{
		SalesComparatives: model.ChartComparatives{
			Monthly:    chartSeries(commercial.Comparatives.Monthly),
			Bimonthly:  chartSeries(commercial.Comparatives.Bimonthly),
			Semiannual: chartSeries(commercial.Comparatives.Semiannual),
		},
	}

	broker := model.DelinquencyChart{
		Labels: make([]string, 0, len(receivables.DelinquencyByBroker)),
		Values: make([]float64, 0, len(receivables.DelinquencyByBroker)),
		Rates:  make([]float64, 0, len(receivables.DelinquencyByBroker)),
	}
	for _, row := range receivables.DelinquencyByBroker {
		broker.Labels = append(broker.Labels, row.Broker)
		broker.Values = append(broker.Values, row.DelinquentValue.InexactFloat64())
		broker.Rates = append(broker.Rates, row.Rate.InexactFloat64())
	}
	charts.DelinquencyByBroker = broker

	supplier := model.SupplierShareChart{
		Labels: make([]string, 0, len(purchasing.SupplierShare)),
		Values: make([]float64, 0, len(purchasing.SupplierShare)),
	}
	for _, row := range purchasing.SupplierShare {
		supplier.Labels = append(supplier.Labels, row.Supplier)
		supplier.Values = append(supplier.Values, row.Value.InexactFloat64())
	}
	charts.SupplierShare = supplier

	return charts
}

func chartSeries(series []model.PeriodSales) []model.ChartPeriodPoint {
	points := make([]model.ChartPeriodPoint, 0, len(series))
	for _, item := range series {
		points = append(points, model.ChartPeriodPoint{
			Label: item.Label,
			Value: item.Value.InexactFloat64(),
			Units: item.Units,
		})
	}
	return points
}

// resolveAsOf is the single place the reporting date gets defaulted and
// truncated, so the export filename and the report always agree on the day.
func resolveAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return dateOnly(asOf)
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
