// Package pdf genera el informe de antigüedad de cartera en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título     │  Fecha de corte / generado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | 0-30 | 31-60 | 61-90 | +90 | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Pendiente / Vencido / Por vencer / Clientes       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/receivables"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ receivables.AgingRenderer = (*AgingPDFGenerator)(nil)

// AgingPDFGenerator implementa receivables.AgingRenderer usando Maroto v2.
type AgingPDFGenerator struct {
	company string
}

// NewAgingPDFGenerator construye el generador; company se imprime en el encabezado.
func NewAgingPDFGenerator(company string) *AgingPDFGenerator {
	return &AgingPDFGenerator{company: company}
}

// Render genera el PDF y devuelve sus bytes.
func (g *AgingPDFGenerator) Render(rep *dto.AgingReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Antigüedad de cartera", true).
		WithAuthor(nonEmpty(g.company, "gestion-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range clientRows(rep.Clients) {
		m.AddRows(r)
	}
	if len(rep.Clients) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin saldos pendientes a la fecha de corte.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de cartera: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, rep *dto.AgingReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "Cartera"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ANTIGÜEDAD DE CARTERA", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha de corte: "+rep.CutoffDate, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 3, align.Left),
		h("0-30", 2, align.Right),
		h("31-60", 2, align.Right),
		h("61-90", 1, align.Right),
		h("+90", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// clientRows una fila por cliente: nombre e identificación, rangos y total.
func clientRows(clients []dto.AgingClientResult) []core.Row {
	result := make([]core.Row, 0, len(clients))
	money := func(d decimal.Decimal, size int) core.Col {
		return col.New(size).Add(text.New(formatMoney(d), props.Text{
			Size: 7.5, Align: align.Right, Top: 1,
		}))
	}
	for _, c := range clients {
		result = append(result, row.New(9).Add(
			col.New(3).Add(
				text.New(c.Name, props.Text{Size: 7.5, Top: 1}),
				text.New(c.Identifier, props.Text{Size: 6.5, Top: 5, Color: colorGray}),
			),
			money(c.Bucket0To30, 2),
			money(c.Bucket31To60, 2),
			money(c.Bucket61To90, 1),
			money(c.BucketOver90, 2),
			col.New(2).Add(text.New(formatMoney(c.TotalPending), props.Text{
				Style: fontstyle.Bold, Size: 7.5, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

func totalsRow(rep *dto.AgingReportResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Right: 2})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Total pendiente:"),
			label("Vencido:"),
			label("Por vencer:"),
			label("Clientes:"),
		),
		col.New(3).Add(
			text.New(formatMoney(rep.TotalPending), props.Text{
				Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Color: colorPrimary,
			}),
			text.New(formatMoney(rep.Summary.OverdueAmount), props.Text{
				Size: 8.5, Align: align.Right, Top: 5, Color: colorDanger,
			}),
			text.New(formatMoney(rep.Summary.NotYetDueAmount), props.Text{
				Size: 8.5, Align: align.Right, Top: 10,
			}),
			text.New(fmt.Sprintf("%d", rep.Summary.TotalClients), props.Text{
				Size: 8.5, Align: align.Right, Top: 15,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato colombiano con dos decimales.
// Ej: 25000 → "$25.000,00", 1234567.5 → "$1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + string(buf) + "," + frac
}
