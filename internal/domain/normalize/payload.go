package normalize

// Shape clasifica la forma de un payload JSON decodificado. El conjunto es
// cerrado: todo valor cae en exactamente una variante y la extracción decide
// por switch sobre ella, no por encadenamiento opcional implícito.
type Shape int

const (
	// ShapeArray es un array desnudo en la raíz.
	ShapeArray Shape = iota
	// ShapeObject es un objeto, posiblemente una envoltura.
	ShapeObject
	// ShapeScalar es cualquier otro valor (string, número, bool, null).
	ShapeScalar
)

// Classify determina la variante de un payload.
func Classify(payload any) Shape {
	switch payload.(type) {
	case []any:
		return ShapeArray
	case map[string]any:
		return ShapeObject
	default:
		return ShapeScalar
	}
}

// Path es una ruta de claves dentro de una envoltura; vacía significa el
// payload mismo. Las tablas de rutas por entidad hacen auditable el orden
// de resolución: se prueban de arriba hacia abajo y la primera que contiene
// un array gana, ignorando cualquier otra clave candidata presente.
type Path []string

// ExtractArray localiza la secuencia de elementos de una respuesta de
// listado entre las convenciones de envoltura conocidas. Si ninguna ruta
// candidata contiene un array devuelve una secuencia vacía: un payload con
// forma inesperada produce cero filas, nunca un error. Es una decisión
// deliberada: el costo de romper ante un cambio menor del backend se juzgó
// mayor que el de mostrar una lista vacía.
func ExtractArray(payload any, candidates []Path) []any {
	switch Classify(payload) {
	case ShapeArray:
		return payload.([]any)
	case ShapeObject:
		root := payload.(map[string]any)
		for _, path := range candidates {
			if arr, ok := resolvePath(root, path); ok {
				return arr
			}
		}
	}
	return []any{}
}

func resolvePath(root map[string]any, path Path) ([]any, bool) {
	var current any = root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current = obj[key]
	}
	arr, ok := current.([]any)
	return arr, ok
}

// UnwrapEntity desempaqueta la envoltura de una respuesta de entidad única.
// Orden fijo: data, la clave singular de la entidad, item, result y por
// último el payload mismo. La primera clave presente con valor no nulo gana.
func UnwrapEntity(payload any, singular string) any {
	obj := AsRecord(payload)
	if obj == nil {
		return payload
	}
	keys := []string{"data", singular, "item", "result"}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return payload
}
