package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tu-usuario/inventory-console/internal/application/dto"
)

// CatalogExporter define el puerto de salida para escribir el catálogo en
// un archivo. Las implementaciones concretas (XLSX, PDF) viven en
// infrastructure/export.
type CatalogExporter interface {
	Export(rows []dto.CatalogRow, outputPath string) error
}

// ExportUseCase exporta la vista de catálogo al formato pedido.
type ExportUseCase struct {
	catalog   *CatalogUseCase
	exporters map[string]CatalogExporter
}

// NewExportUseCase construye el caso de uso con los exportadores disponibles,
// indexados por formato ("xlsx", "pdf").
func NewExportUseCase(catalog *CatalogUseCase, exporters map[string]CatalogExporter) *ExportUseCase {
	return &ExportUseCase{catalog: catalog, exporters: exporters}
}

// Formats devuelve los formatos soportados, ordenados.
func (uc *ExportUseCase) Formats() []string {
	formats := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Export lista el catálogo y lo escribe en outputPath con el formato dado.
// Devuelve la cantidad de filas exportadas.
func (uc *ExportUseCase) Export(ctx context.Context, format, outputPath string) (int, error) {
	exporter, ok := uc.exporters[strings.ToLower(format)]
	if !ok {
		return 0, fmt.Errorf("exportar: formato %q no soportado (disponibles: %s)",
			format, strings.Join(uc.Formats(), ", "))
	}
	rows, err := uc.catalog.Rows(ctx)
	if err != nil {
		return 0, err
	}
	if err := exporter.Export(rows, outputPath); err != nil {
		return 0, fmt.Errorf("exportar: escribir %s: %w", outputPath, err)
	}
	return len(rows), nil
}
