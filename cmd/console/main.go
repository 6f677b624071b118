// Console de inventario: listados, altas, bajas y reportes contra el
// backend REST, desde la terminal. Reemplaza las pantallas de listado del
// frontend con subcomandos entidad:verbo.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/tu-usuario/inventory-console/internal/application/usecase"
	"github.com/tu-usuario/inventory-console/internal/domain"
	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/infrastructure/export"
	"github.com/tu-usuario/inventory-console/internal/infrastructure/rest"
	"github.com/tu-usuario/inventory-console/pkg/config"
	"github.com/tu-usuario/inventory-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	client := rest.NewClient(cfg.API, log)
	items := rest.NewItemRepository(client, cfg.API.ItemsPath)
	categories := rest.NewCategoryRepository(client, cfg.API.CategoriesPath)
	suppliers := rest.NewSupplierRepository(client, cfg.API.SuppliersPath)
	movements := rest.NewMovementRepository(client, cfg.API.MovementsPath)
	users := rest.NewUserRepository(client, cfg.API.UsersPath)

	catalogUC := usecase.NewCatalogUseCase(items, categories, suppliers, language.Spanish)
	valuationUC := usecase.NewValuationUseCase(items)
	exportUC := usecase.NewExportUseCase(catalogUC, map[string]usecase.CatalogExporter{
		"xlsx": export.NewXLSXExporter(),
		"pdf":  export.NewPDFExporter("Catálogo de inventario"),
	})

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	// ── Catálogo y reportes ──────────────────────────────────────────────
	case "catalog:list":
		rows, err := catalogUC.Rows(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "SKU\tNOMBRE\tCATEGORÍA\tPROVEEDOR\tCANT\tPRECIO")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\n",
				r.Item.SKU, r.Item.Name, r.CategoryName, r.SupplierName,
				r.Item.Quantity, r.Item.Price)
		}
		_ = w.Flush()

	case "catalog:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		format := fs.String("format", "xlsx", "xlsx|pdf")
		out := fs.String("out", "", "archivo de salida")
		_ = fs.Parse(args)
		if *out == "" {
			must(fmt.Errorf("--out es requerido"))
		}
		count, err := exportUC.Export(ctx, *format, *out)
		must(err)
		fmt.Printf("exportadas %d filas a %s\n", count, *out)

	case "report:valuation":
		report, err := valuationUC.Report(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "SKU\tNOMBRE\tCANT\tPRECIO\tTOTAL\t")
		for _, l := range report.Lines {
			mark := ""
			if l.LowStock {
				mark = "BAJO MÍNIMO"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
				l.SKU, l.Name, l.Quantity, l.UnitPrice.StringFixed(2), l.Total.StringFixed(2), mark)
		}
		_ = w.Flush()
		fmt.Printf("valor total: %s (%d líneas bajo mínimo)\n",
			report.TotalValue.StringFixed(2), report.LowStock)

	// ── Items ────────────────────────────────────────────────────────────
	case "items:list":
		list, err := items.List(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "ID\tSKU\tNOMBRE\tCANT\tPRECIO")
		for _, it := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n", it.ID, it.SKU, it.Name, it.Quantity, it.Price)
		}
		_ = w.Flush()
	case "items:get":
		printJSON(items.GetByID(ctx, idFlag(cmd, args)))
	case "items:create":
		var in entity.ItemInput
		decodeData(cmd, args, &in)
		printJSON(items.Create(ctx, in))
	case "items:update":
		id, data := idAndData(cmd, args)
		var in entity.ItemInput
		mustDecode(data, &in)
		printJSON(items.Update(ctx, id, in))
	case "items:delete":
		must(items.Delete(ctx, idFlag(cmd, args)))
		fmt.Println("eliminado")

	// ── Categorías ───────────────────────────────────────────────────────
	case "categories:list":
		list, err := categories.List(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tACTIVA")
		for _, c := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, boolMark(c.IsActive))
		}
		_ = w.Flush()
	case "categories:get":
		printJSON(categories.GetByID(ctx, idFlag(cmd, args)))
	case "categories:create":
		var in entity.CategoryInput
		decodeData(cmd, args, &in)
		printJSON(categories.Create(ctx, in))
	case "categories:update":
		id, data := idAndData(cmd, args)
		var in entity.CategoryInput
		mustDecode(data, &in)
		printJSON(categories.Update(ctx, id, in))
	case "categories:delete":
		must(categories.Delete(ctx, idFlag(cmd, args)))
		fmt.Println("eliminada")

	// ── Proveedores ──────────────────────────────────────────────────────
	case "suppliers:list":
		list, err := suppliers.List(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tCONTACTO\tTELÉFONO\tACTIVO")
		for _, s := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Name, strOr(s.ContactName), strOr(s.Phone), boolMark(s.IsActive))
		}
		_ = w.Flush()
	case "suppliers:get":
		printJSON(suppliers.GetByID(ctx, idFlag(cmd, args)))
	case "suppliers:create":
		var in entity.SupplierInput
		decodeData(cmd, args, &in)
		printJSON(suppliers.Create(ctx, in))
	case "suppliers:update":
		id, data := idAndData(cmd, args)
		var in entity.SupplierInput
		mustDecode(data, &in)
		printJSON(suppliers.Update(ctx, id, in))
	case "suppliers:delete":
		must(suppliers.Delete(ctx, idFlag(cmd, args)))
		fmt.Println("eliminado")

	// ── Movimientos ──────────────────────────────────────────────────────
	case "movements:list":
		list, err := movements.List(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "ID\tTIPO\tCANT\tITEM\tUSUARIO")
		for _, m := range list {
			itemName := ""
			if m.Item != nil {
				itemName = m.Item.Name
			}
			userName := ""
			if m.User != nil {
				userName = m.User.Name
			}
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%s\n", m.ID, m.MovementType, m.Quantity, itemName, userName)
		}
		_ = w.Flush()
	case "movements:get":
		printJSON(movements.GetByID(ctx, idFlag(cmd, args)))
	case "movements:create":
		var in entity.MovementInput
		decodeData(cmd, args, &in)
		printJSON(movements.Create(ctx, in))
	case "movements:update":
		id, data := idAndData(cmd, args)
		var in entity.MovementInput
		mustDecode(data, &in)
		printJSON(movements.Update(ctx, id, in))
	case "movements:delete":
		must(movements.Delete(ctx, idFlag(cmd, args)))
		fmt.Println("eliminado")

	// ── Usuarios ─────────────────────────────────────────────────────────
	case "users:list":
		list, err := users.List(ctx)
		must(err)
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tUSERNAME")
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.FullName(), strOr(u.Email), strOr(u.Username))
		}
		_ = w.Flush()
	case "users:get":
		printJSON(users.GetByID(ctx, idFlag(cmd, args)))
	case "users:create":
		var in entity.UserInput
		decodeData(cmd, args, &in)
		printJSON(users.Create(ctx, in))
	case "users:update":
		id, data := idAndData(cmd, args)
		var in entity.UserInput
		mustDecode(data, &in)
		printJSON(users.Update(ctx, id, in))
	case "users:delete":
		must(users.Delete(ctx, idFlag(cmd, args)))
		fmt.Println("eliminado")

	default:
		usage()
		os.Exit(1)
	}
}

// ── Helpers de CLI ────────────────────────────────────────────────────────────

func usage() {
	fmt.Fprintln(os.Stderr, `uso: console <comando> [flags]

comandos:
  catalog:list                           catálogo con categoría y proveedor resueltos
  catalog:export --format xlsx|pdf --out archivo
  report:valuation                       valorización del inventario

  <entidad>:list
  <entidad>:get    --id ID
  <entidad>:create --data '<json>'
  <entidad>:update --id ID --data '<json>'
  <entidad>:delete --id ID

entidades: items, categories, suppliers, movements, users`)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func idFlag(cmd string, args []string) string {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "id de la entidad")
	_ = fs.Parse(args)
	if *id == "" {
		must(fmt.Errorf("--id es requerido"))
	}
	return *id
}

func idAndData(cmd string, args []string) (string, string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "id de la entidad")
	data := fs.String("data", "", "cuerpo JSON")
	_ = fs.Parse(args)
	if *id == "" || *data == "" {
		must(fmt.Errorf("--id y --data son requeridos"))
	}
	return *id, *data
}

func decodeData(cmd string, args []string, out any) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	data := fs.String("data", "", "cuerpo JSON")
	_ = fs.Parse(args)
	if *data == "" {
		must(fmt.Errorf("--data es requerido"))
	}
	mustDecode(*data, out)
}

func mustDecode(data string, out any) {
	if err := json.Unmarshal([]byte(data), out); err != nil {
		must(fmt.Errorf("decodificar --data: %w", err))
	}
}

func printJSON(v any, err error) {
	must(err)
	blob, err := json.MarshalIndent(v, "", "  ")
	must(err)
	fmt.Println(string(blob))
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolMark(p *bool) string {
	switch {
	case p == nil:
		return "?"
	case *p:
		return "sí"
	default:
		return "no"
	}
}

// must aborta con un mensaje legible. Para errores del backend imprime el
// resumen y los errores por campo del cuerpo de validación.
func must(err error) {
	if err == nil {
		return
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "error del backend (estado %d): %s\n", apiErr.Status, apiErr.Summary())
		fields := apiErr.FieldErrors()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", k, fields[k])
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
