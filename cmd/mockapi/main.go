// Backend de pruebas para desarrollo local de la console. Sirve datos de
// ejemplo con las convenciones de envoltura que los despliegues reales del
// backend han usado: cada colección responde con una forma distinta a
// propósito, para ejercitar la normalización de punta a punta.
package main

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/inventory-console/pkg/config"
	"github.com/tu-usuario/inventory-console/pkg/logger"
)

// store colección en memoria con ids numéricos autoincrementales, como los
// asigna el backend real.
type store struct {
	mu     sync.Mutex
	nextID int
	rows   []map[string]any
}

func newStore(seed []map[string]any) *store {
	s := &store{nextID: 1}
	for _, row := range seed {
		s.insert(row)
	}
	return s
}

func (s *store) insert(row map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	row["id"] = s.nextID
	s.nextID++
	s.rows = append(s.rows, row)
	return row
}

func (s *store) list() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *store) find(id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if strconv.Itoa(row["id"].(int)) == id {
			return row
		}
	}
	return nil
}

func (s *store) update(id string, patch map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if strconv.Itoa(row["id"].(int)) != id {
			continue
		}
		for k, v := range patch {
			if k != "id" {
				row[k] = v
			}
		}
		return row
	}
	return nil
}

func (s *store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, row := range s.rows {
		if strconv.Itoa(row["id"].(int)) == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return true
		}
	}
	return false
}

// envelope cómo responde cada colección: la forma del listado y la clave de
// la entidad única. Refleja la deriva real entre despliegues del backend.
type envelope struct {
	list     func(rows []map[string]any) any
	singular string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	app := fiber.New(fiber.Config{AppName: "inventory-mockapi"})
	app.Use(recover.New())

	registerCollection(app, "/api/v1/items", newStore(seedItems()), envelope{
		// items: array desnudo, sin envoltura
		list:     func(rows []map[string]any) any { return rows },
		singular: "item",
	}, requireFields("name", "sku"))

	registerCollection(app, "/api/v1/categories", newStore(seedCategories()), envelope{
		// categories: {data: [...]}
		list:     func(rows []map[string]any) any { return fiber.Map{"data": rows} },
		singular: "category",
	}, requireFields("name"))

	registerCollection(app, "/api/v1/suppliers", newStore(seedSuppliers()), envelope{
		// suppliers: {success, data: {suppliers: [...]}}
		list: func(rows []map[string]any) any {
			return fiber.Map{"success": true, "data": fiber.Map{"suppliers": rows}}
		},
		singular: "supplier",
	}, requireFields("name"))

	registerCollection(app, "/api/v1/movements", newStore(seedMovements()), envelope{
		// movements: {results: [...]}
		list:     func(rows []map[string]any) any { return fiber.Map{"results": rows} },
		singular: "movement",
	}, requireFields("movementType"))

	registerCollection(app, "/api/v1/users", newStore(seedUsers()), envelope{
		// users: {success, data: {users: [...]}} con campos snake_case
		list: func(rows []map[string]any) any {
			return fiber.Map{"success": true, "data": fiber.Map{"users": rows}}
		},
		singular: "user",
	}, requireFields("email"))

	log.Info().Str("addr", cfg.MockAPI.Addr()).Msg("mockapi escuchando")
	if err := app.Listen(cfg.MockAPI.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor mockapi")
	}
}

// registerCollection monta el CRUD de una colección con su envoltura.
func registerCollection(app *fiber.App, path string, s *store, env envelope, validate func(map[string]any) map[string]string) {
	app.Get(path, func(c *fiber.Ctx) error {
		return c.JSON(env.list(s.list()))
	})
	app.Get(path+"/:id", func(c *fiber.Ctx) error {
		row := s.find(c.Params("id"))
		if row == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no encontrado"})
		}
		return c.JSON(fiber.Map{env.singular: row})
	})
	app.Post(path, func(c *fiber.Ctx) error {
		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
		}
		if fields := validate(body); len(fields) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"details": fieldList(fields)})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": s.insert(body)})
	})
	app.Put(path+"/:id", func(c *fiber.Ctx) error {
		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
		}
		row := s.update(c.Params("id"), body)
		if row == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no encontrado"})
		}
		return c.JSON(fiber.Map{"data": row})
	})
	app.Delete(path+"/:id", func(c *fiber.Ctx) error {
		if !s.remove(c.Params("id")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no encontrado"})
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func requireFields(names ...string) func(map[string]any) map[string]string {
	return func(body map[string]any) map[string]string {
		missing := map[string]string{}
		for _, name := range names {
			if v, ok := body[name].(string); !ok || v == "" {
				missing[name] = "requerido"
			}
		}
		return missing
	}
}

func fieldList(fields map[string]string) []fiber.Map {
	out := make([]fiber.Map, 0, len(fields))
	for field, msg := range fields {
		out = append(out, fiber.Map{"field": field, "message": msg})
	}
	return out
}

// ── Datos de ejemplo ──────────────────────────────────────────────────────────

func seedItems() []map[string]any {
	return []map[string]any{
		{"name": "Tornillo 3/8", "sku": "TOR-038", "quantity": 120, "price": 0.35,
			"minQuantity": 50, "unit": "unidad", "categoryId": "1", "supplierId": "1"},
		{"name": "Cable UTP cat6", "sku": "CAB-CT6", "quantity": "300", "price": "1.20",
			"category": map[string]any{"id": 2, "name": "Cables"}},
		{"name": "Pintura blanca 1gal", "sku": "PIN-BL1", "quantity": 8, "price": 24.9, "cost": 18.5},
	}
}

func seedCategories() []map[string]any {
	return []map[string]any{
		{"name": "Ferretería", "description": "Fijaciones y herrajes", "status": "active"},
		{"name": "Cables", "status": "ACTIVE"},
		{"name": "Descontinuados", "isActive": false},
	}
}

func seedSuppliers() []map[string]any {
	return []map[string]any{
		{"name": "Distribuciones El Dorado", "contact_name": "María Pérez",
			"contact": map[string]any{"email": "ventas@eldorado.example", "phoneNumber": "+57 1 555 0101"},
			"address": map[string]any{"street": "Calle 26 # 13-25", "city": "Bogotá", "country": "CO"},
			"status":  "active"},
		{"name": "Importadora Andina", "email": "contacto@andina.example",
			"address": "Av. El Dorado 68-90, Bogotá", "isActive": true},
	}
}

func seedMovements() []map[string]any {
	return []map[string]any{
		{"movement_type": "IN", "quantity": 100, "reason": "compra inicial",
			"item": map[string]any{"id": 1, "name": "Tornillo 3/8", "sku": "TOR-038"},
			"user": map[string]any{"id": 1, "first_name": "Ana", "last_name": "Gómez"}},
		{"type": "OUT", "quantity": -20, "reference_text": "orden 44", "item_id": "1", "user_id": "2"},
	}
}

func seedUsers() []map[string]any {
	return []map[string]any{
		{"first_name": "Ana", "last_name": "Gómez", "email": "ana@example.com", "username": "agomez"},
		{"name": "Bruno Díaz Mejía", "email": "bruno@example.com"},
	}
}
