package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	MockAPI MockAPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración del backend de inventario.
// Cada colección tiene su ruta configurable por separado porque los
// despliegues del backend no siempre montan los recursos en el mismo sitio.
type APIConfig struct {
	BaseURL        string // ej. https://inventario.example.com
	Token          string // bearer opcional; vacío = sin Authorization
	TimeoutMs      int
	ItemsPath      string
	CategoriesPath string
	SuppliersPath  string
	MovementsPath  string
	UsersPath      string
}

// Timeout devuelve el timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// MockAPIConfig configuración del backend de pruebas local.
type MockAPIConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockAPIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, API_TOKEN, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:4010"),
			Token:          getString(v, "API_TOKEN", ""),
			TimeoutMs:      getInt(v, "API_TIMEOUT_MS", 15000),
			ItemsPath:      getString(v, "API_ITEMS_PATH", "/api/v1/items"),
			CategoriesPath: getString(v, "API_CATEGORIES_PATH", "/api/v1/categories"),
			SuppliersPath:  getString(v, "API_SUPPLIERS_PATH", "/api/v1/suppliers"),
			MovementsPath:  getString(v, "API_MOVEMENTS_PATH", "/api/v1/movements"),
			UsersPath:      getString(v, "API_USERS_PATH", "/api/v1/users"),
		},
		MockAPI: MockAPIConfig{
			Host: getString(v, "MOCKAPI_HOST", "0.0.0.0"),
			Port: getInt(v, "MOCKAPI_PORT", 4010),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
