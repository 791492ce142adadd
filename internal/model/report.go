package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverviewReport is the full dashboard payload assembled per request.
// Monetary values stay exact decimals; only ChartsPayload carries floats.
type OverviewReport struct {
	Commercial  CommercialReport  `json:"comercial"`
	Receivables ReceivablesReport `json:"carteira"`
	Purchasing  PurchasingReport  `json:"compras"`
	Strategic   StrategicReport   `json:"estrategicos"`
	Charts      ChartsPayload     `json:"charts"`
}

type CommercialReport struct {
	TotalValue    decimal.Decimal          `json:"valor_total_vendas"`
	TotalUnits    int64                    `json:"total_unidades"`
	AverageTicket decimal.Decimal          `json:"ticket_medio_venda"`
	TicketPerUnit decimal.Decimal          `json:"ticket_medio_por_unidade"`
	SalesByBroker []BrokerDevelopmentSales `json:"vendas_por_corretor"`
	Comparatives  SalesComparatives        `json:"comparativos"`
}

type BrokerDevelopmentSales struct {
	BrokerID        uuid.UUID       `json:"corretor_id"`
	BrokerName      string          `json:"corretor"`
	DevelopmentID   uuid.UUID       `json:"empreendimento_id"`
	DevelopmentName string          `json:"empreendimento"`
	TotalValue      decimal.Decimal `json:"total_valor"`
	TotalUnits      int64           `json:"total_unidades"`
}

type SalesComparatives struct {
	Monthly    []PeriodSales `json:"mensal"`
	Bimonthly  []PeriodSales `json:"bimestral"`
	Semiannual []PeriodSales `json:"semestral"`
}

type PeriodSales struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"valor"`
	Units int64           `json:"unidades"`
}

type ReceivablesReport struct {
	DelinquencyRate     decimal.Decimal     `json:"taxa_inadimplencia"`
	DelinquencyByAge    []AgingBucket       `json:"inadimplencia_por_faixa"`
	AmountReceived      decimal.Decimal     `json:"valor_recebido"`
	BalanceDue          decimal.Decimal     `json:"saldo_devedor"`
	DelinquencyByBroker []BrokerDelinquency `json:"inadimplencia_por_corretor"`
}

// AgingBucket holds the delinquent balance falling into one age range.
type AgingBucket struct {
	Range  string          `json:"faixa"`
	Amount decimal.Decimal `json:"valor"`
}

type BrokerDelinquency struct {
	Broker          string          `json:"corretor"`
	PortfolioTotal  decimal.Decimal `json:"total_carteira"`
	DelinquentValue decimal.Decimal `json:"valor_inadimplente"`
	Rate            decimal.Decimal `json:"taxa"`
}

type PurchasingReport struct {
	TotalCost         decimal.Decimal   `json:"custo_total"`
	CostByDevelopment []DevelopmentCost `json:"custo_por_empreendimento"`
	SupplierShare     []SupplierShare   `json:"supplier_share"`
}

type DevelopmentCost struct {
	DevelopmentID   uuid.UUID       `json:"empreendimento_id"`
	DevelopmentName string          `json:"empreendimento"`
	Total           decimal.Decimal `json:"total"`
}

type SupplierShare struct {
	Supplier string          `json:"fornecedor"`
	Value    decimal.Decimal `json:"valor"`
	Share    decimal.Decimal `json:"percentual"`
}

type StrategicReport struct {
	PlannedVsActual     []DevelopmentPlanning `json:"planejado_vs_realizado"`
	MarginByDevelopment []DevelopmentMargin   `json:"margem_por_empreendimento"`
}

type DevelopmentPlanning struct {
	DevelopmentName string          `json:"empreendimento"`
	PlannedCost     decimal.Decimal `json:"custo_planejado"`
	ActualCost      decimal.Decimal `json:"custo_real"`
	Variance        decimal.Decimal `json:"variacao"`
}

type DevelopmentMargin struct {
	DevelopmentName string          `json:"empreendimento"`
	Sales           decimal.Decimal `json:"vendas"`
	Costs           decimal.Decimal `json:"custos"`
	Margin          decimal.Decimal `json:"margem"`
}

// ChartsPayload is the chart-ready projection of the report. Float
// conversion happens only here, for rendering.
type ChartsPayload struct {
	SalesComparatives   ChartComparatives  `json:"comparativos_vendas"`
	DelinquencyByBroker DelinquencyChart   `json:"inadimplencia_corretor"`
	SupplierShare       SupplierShareChart `json:"supplier_share"`
}

type ChartComparatives struct {
	Monthly    []ChartPeriodPoint `json:"mensal"`
	Bimonthly  []ChartPeriodPoint `json:"bimestral"`
	Semiannual []ChartPeriodPoint `json:"semestral"`
}

type ChartPeriodPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"valor"`
	Units int64   `json:"unidades"`
}

type DelinquencyChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Rates  []float64 `json:"taxas"`
}

type SupplierShareChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
