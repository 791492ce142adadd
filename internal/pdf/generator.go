package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/imobops/backoffice/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// Generate renders the overview report as a printable document. Amounts
// are formatted from floats here; this is rendering-only precision.
func (g *Generator) Generate(report model.OverviewReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr("Painel Financeiro"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.sectionTitle(pdf, tr, "Comercial")
	g.keyValue(pdf, tr, "Valor total de vendas", formatAmount(report.Commercial.TotalValue.InexactFloat64()))
	g.keyValue(pdf, tr, "Unidades vendidas", fmt.Sprintf("%d", report.Commercial.TotalUnits))
	g.keyValue(pdf, tr, "Ticket médio por venda", formatAmount(report.Commercial.AverageTicket.InexactFloat64()))
	g.keyValue(pdf, tr, "Ticket médio por unidade", formatAmount(report.Commercial.TicketPerUnit.InexactFloat64()))
	pdf.Ln(2)

	g.table(pdf, tr,
		[]string{"Corretor", "Empreendimento", "Valor", "Unidades"},
		[]float64{55, 55, 40, 30},
		salesRows(report.Commercial.SalesByBroker),
	)
	pdf.Ln(4)

	g.sectionTitle(pdf, tr, "Carteira")
	g.keyValue(pdf, tr, "Taxa de inadimplência", formatAmount(report.Receivables.DelinquencyRate.InexactFloat64())+"%")
	g.keyValue(pdf, tr, "Valor recebido", formatAmount(report.Receivables.AmountReceived.InexactFloat64()))
	g.keyValue(pdf, tr, "Saldo devedor", formatAmount(report.Receivables.BalanceDue.InexactFloat64()))
	pdf.Ln(2)

	g.table(pdf, tr,
		[]string{"Faixa de atraso", "Saldo"},
		[]float64{90, 90},
		agingRows(report.Receivables.DelinquencyByAge),
	)
	pdf.Ln(4)

	g.sectionTitle(pdf, tr, "Compras")
	g.keyValue(pdf, tr, "Custo total", formatAmount(report.Purchasing.TotalCost.InexactFloat64()))
	pdf.Ln(2)
	g.table(pdf, tr,
		[]string{"Fornecedor", "Valor", "Participação"},
		[]float64{90, 45, 45},
		supplierRows(report.Purchasing.SupplierShare),
	)
	pdf.Ln(4)

	g.sectionTitle(pdf, tr, "Estratégico")
	g.table(pdf, tr,
		[]string{"Empreendimento", "Vendas", "Custos", "Margem"},
		[]float64{70, 40, 40, 30},
		marginRows(report.Strategic.MarginByDevelopment),
	)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
}

func (g *Generator) keyValue(pdf *gofpdf.Fpdf, tr func(string) string, key, value string) {
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(70, 6, tr(key), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func (g *Generator) table(pdf *gofpdf.Fpdf, tr func(string) string, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont(g.fontName, "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(g.fontName, "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func salesRows(items []model.BrokerDevelopmentSales) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.BrokerName,
			item.DevelopmentName,
			formatAmount(item.TotalValue.InexactFloat64()),
			fmt.Sprintf("%d", item.TotalUnits),
		})
	}
	return rows
}

func agingRows(buckets []model.AgingBucket) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, []string{bucket.Range, formatAmount(bucket.Amount.InexactFloat64())})
	}
	return rows
}

func supplierRows(items []model.SupplierShare) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Supplier,
			formatAmount(item.Value.InexactFloat64()),
			formatAmount(item.Share.InexactFloat64()) + "%",
		})
	}
	return rows
}

func marginRows(items []model.DevelopmentMargin) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.DevelopmentName,
			formatAmount(item.Sales.InexactFloat64()),
			formatAmount(item.Costs.InexactFloat64()),
			formatAmount(item.Margin.InexactFloat64()),
		})
	}
	return rows
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
