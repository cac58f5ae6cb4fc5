// Package pdf genera las versiones imprimibles de los reportes de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUBTÍTULO: umbral / cantidad de filas                      │
//	│  TABLA: columnas del reporte                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES (solo resumen de ventas)                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator genera los reportes de stock bajo y resumen de ventas con Maroto v2.
type ReportPDFGenerator struct {
	author  string
	printer *message.Printer
	now     func() time.Time
}

// NewReportPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewReportPDFGenerator(author string) *ReportPDFGenerator {
	return &ReportPDFGenerator{
		author:  author,
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}
}

// LowStockPDF genera el reporte de productos con quantity < threshold.
func (g *ReportPDFGenerator) LowStockPDF(_ context.Context, threshold int, items []*entity.Product) ([]byte, error) {
	m := maroto.New(g.config("Low Stock Report"))

	m.AddRows(g.headerRow("LOW STOCK REPORT"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(subtitleRow(fmt.Sprintf("Threshold: %d   |   Products: %d", threshold, len(items))))

	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("All items in stock.", props.Text{Size: 10, Top: 3, Align: align.Center, Color: colorGray}),
		)))
	} else {
		m.AddRows(tableHeaderRow(
			headerCol{"ID", 2, align.Left},
			headerCol{"Product", 6, align.Left},
			headerCol{"Quantity", 2, align.Right},
			headerCol{"Price", 2, align.Right},
		))
		for _, p := range items {
			qtyColor := colorGray
			if p.Quantity == 0 {
				qtyColor = colorAlert
			}
			m.AddRows(row.New(7).Add(
				col.New(2).Add(text.New(strconv.FormatInt(p.ID, 10), props.Text{Size: 8, Top: 1, Left: 1})),
				col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
				col.New(2).Add(text.New(strconv.Itoa(p.Quantity), props.Text{
					Size: 8, Top: 1, Align: align.Right, Color: qtyColor, Style: fontstyle.Bold,
				})),
				col.New(2).Add(text.New(g.money(p.Price), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			))
		}
	}

	return generate(m)
}

// SalesSummaryPDF genera el resumen de ventas por producto con total general.
func (g *ReportPDFGenerator) SalesSummaryPDF(_ context.Context, rows []repository.SalesSummaryResult) ([]byte, error) {
	m := maroto.New(g.config("Sales Summary"))

	m.AddRows(g.headerRow("SALES SUMMARY"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(subtitleRow(fmt.Sprintf("Products with sales: %d", len(rows))))

	m.AddRows(tableHeaderRow(
		headerCol{"ID", 2, align.Left},
		headerCol{"Product", 5, align.Left},
		headerCol{"Units sold", 2, align.Right},
		headerCol{"Revenue", 3, align.Right},
	))

	var units int64
	revenue := decimal.Zero
	for _, r := range rows {
		units += r.TotalQuantitySold
		revenue = revenue.Add(r.TotalRevenue)
		m.AddRows(row.New(7).Add(
			col.New(2).Add(text.New(strconv.FormatInt(r.ProductID, 10), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", r.TotalQuantitySold), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(g.money(r.TotalRevenue), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(g.printer.Sprintf("%d", units), g.money(revenue)))

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportPDFGenerator) config(title string) *mentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
}

// headerRow: título (izq) y fecha de emisión (der).
func (g *ReportPDFGenerator) headerRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Generated: "+g.now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func subtitleRow(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

type headerCol struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols ...headerCol) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func totalsRow(units, revenue string) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1}
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 1})),
		col.New(2).Add(text.New(units, bold)),
		col.New(3).Add(text.New(revenue, bold)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles y dos decimales. Ej: 1234.5 → "$1,234.50".
func (g *ReportPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
