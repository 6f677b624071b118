package export

import (
	"fmt"
	"os"
	"strconv"

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

	"github.com/tu-usuario/inventory-console/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter escribe el catálogo como tabla PDF usando Maroto v2.
type PDFExporter struct {
	title string
}

// NewPDFExporter construye el exportador. title encabeza el documento.
func NewPDFExporter(title string) *PDFExporter {
	return &PDFExporter{title: title}
}

// Export genera el PDF y lo escribe en outputPath.
func (e *PDFExporter) Export(rows []dto.CatalogRow, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(e.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(e.title, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range catalogRows(rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	return os.WriteFile(outputPath, doc.GetBytes(), 0o644)
}

// titleRow: título (izq) y total de filas (der).
func titleRow(title string, count int) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d artículos", count), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del catálogo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Precio", 3, align.Right),
	)
}

// catalogRows: una fila por item.
func catalogRows(rows []dto.CatalogRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		item := r.Item
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(item.SKU, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(item.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.CategoryName, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(item.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%.2f", item.Price), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
