package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/imobops/backoffice/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the overview report as a workbook, one sheet per
// report group. Cell values are rendering-only floats.
func (g *Generator) Generate(report model.OverviewReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Visão Geral"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}
	if err := g.writeSales(file, "Vendas", report.Commercial); err != nil {
		return nil, err
	}
	if err := g.writeReceivables(file, "Carteira", report.Receivables); err != nil {
		return nil, err
	}
	if err := g.writePurchasing(file, "Compras", report.Purchasing); err != nil {
		return nil, err
	}
	if err := g.writeStrategic(file, "Planejamento", report.Strategic); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.OverviewReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Valor total de vendas")
	set("B1", report.Commercial.TotalValue.InexactFloat64())
	set("A2", "Unidades vendidas")
	set("B2", report.Commercial.TotalUnits)
	set("A3", "Ticket médio por venda")
	set("B3", report.Commercial.AverageTicket.InexactFloat64())
	set("A4", "Ticket médio por unidade")
	set("B4", report.Commercial.TicketPerUnit.InexactFloat64())
	set("A5", "Taxa de inadimplência (%)")
	set("B5", report.Receivables.DelinquencyRate.InexactFloat64())
	set("A6", "Valor recebido")
	set("B6", report.Receivables.AmountReceived.InexactFloat64())
	set("A7", "Saldo devedor")
	set("B7", report.Receivables.BalanceDue.InexactFloat64())
	set("A8", "Custo total de compras")
	set("B8", report.Purchasing.TotalCost.InexactFloat64())
	return nil
}

func (g *Generator) writeSales(file *excelize.File, sheet string, commercial model.CommercialReport) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Corretor", "Empreendimento", "Valor", "Unidades"}
	for i, header := range headers {
		set(fmt.Sprintf("%c1", 'A'+i), header)
	}
	row := 2
	for _, item := range commercial.SalesByBroker {
		set(fmt.Sprintf("A%d", row), item.BrokerName)
		set(fmt.Sprintf("B%d", row), item.DevelopmentName)
		set(fmt.Sprintf("C%d", row), item.TotalValue.InexactFloat64())
		set(fmt.Sprintf("D%d", row), item.TotalUnits)
		row++
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Período")
	set(fmt.Sprintf("B%d", row), "Valor")
	set(fmt.Sprintf("C%d", row), "Unidades")
	row++
	for _, item := range commercial.Comparatives.Monthly {
		set(fmt.Sprintf("A%d", row), item.Label)
		set(fmt.Sprintf("B%d", row), item.Value.InexactFloat64())
		set(fmt.Sprintf("C%d", row), item.Units)
		row++
	}
	return nil
}

func (g *Generator) writeReceivables(file *excelize.File, sheet string, receivables model.ReceivablesReport) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Faixa de atraso")
	set("B1", "Saldo")
	row := 2
	for _, bucket := range receivables.DelinquencyByAge {
		set(fmt.Sprintf("A%d", row), bucket.Range)
		set(fmt.Sprintf("B%d", row), bucket.Amount.InexactFloat64())
		row++
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Corretor")
	set(fmt.Sprintf("B%d", row), "Carteira")
	set(fmt.Sprintf("C%d", row), "Inadimplente")
	set(fmt.Sprintf("D%d", row), "Taxa (%)")
	row++
	for _, item := range receivables.DelinquencyByBroker {
		set(fmt.Sprintf("A%d", row), item.Broker)
		set(fmt.Sprintf("B%d", row), item.PortfolioTotal.InexactFloat64())
		set(fmt.Sprintf("C%d", row), item.DelinquentValue.InexactFloat64())
		set(fmt.Sprintf("D%d", row), item.Rate.InexactFloat64())
		row++
	}
	return nil
}

func (g *Generator) writePurchasing(file *excelize.File, sheet string, purchasing model.PurchasingReport) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Empreendimento")
	set("B1", "Custo")
	row := 2
	for _, item := range purchasing.CostByDevelopment {
		set(fmt.Sprintf("A%d", row), item.DevelopmentName)
		set(fmt.Sprintf("B%d", row), item.Total.InexactFloat64())
		row++
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Fornecedor")
	set(fmt.Sprintf("B%d", row), "Valor")
	set(fmt.Sprintf("C%d", row), "Participação (%)")
	row++
	for _, item := range purchasing.SupplierShare {
		set(fmt.Sprintf("A%d", row), item.Supplier)
		set(fmt.Sprintf("B%d", row), item.Value.InexactFloat64())
		set(fmt.Sprintf("C%d", row), item.Share.InexactFloat64())
		row++
	}
	return nil
}

func (g *Generator) writeStrategic(file *excelize.File, sheet string, strategic model.StrategicReport) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Empreendimento")
	set("B1", "Custo planejado")
	set("C1", "Custo real")
	set("D1", "Variação")
	row := 2
	for _, item := range strategic.PlannedVsActual {
		set(fmt.Sprintf("A%d", row), item.DevelopmentName)
		set(fmt.Sprintf("B%d", row), item.PlannedCost.InexactFloat64())
		set(fmt.Sprintf("C%d", row), item.ActualCost.InexactFloat64())
		set(fmt.Sprintf("D%d", row), item.Variance.InexactFloat64())
		row++
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Empreendimento")
	set(fmt.Sprintf("B%d", row), "Vendas")
	set(fmt.Sprintf("C%d", row), "Custos")
	set(fmt.Sprintf("D%d", row), "Margem")
	row++
	for _, item := range strategic.MarginByDevelopment {
		set(fmt.Sprintf("A%d", row), item.DevelopmentName)
		set(fmt.Sprintf("B%d", row), item.Sales.InexactFloat64())
		set(fmt.Sprintf("C%d", row), item.Costs.InexactFloat64())
		set(fmt.Sprintf("D%d", row), item.Margin.InexactFloat64())
		row++
	}
	return nil
}
