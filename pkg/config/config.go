package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Log    LogConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// ReportConfig parámetros de los reportes exportables.
type ReportConfig struct {
	TopProducts    int     // tamaño del ranking por valor de inventario
	PageBreakY     float64 // umbral (mm, A4) que fuerza página nueva antes de Compras
	CurrencySymbol string  // sufijo de moneda en todas las exportaciones
	WarehouseTag   string  // tag del nombre de archivo: Reporte_<tag>_<fecha>.<ext>
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, LOG_LEVEL, REPORT_PAGE_BREAK_Y, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "almacen-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Report: ReportConfig{
			TopProducts:    getInt(v, "REPORT_TOP_PRODUCTS", 3),
			PageBreakY:     getFloat(v, "REPORT_PAGE_BREAK_Y", 250),
			CurrencySymbol: getString(v, "REPORT_CURRENCY_SYMBOL", report.DefaultCurrencySymbol),
			WarehouseTag:   getString(v, "REPORT_WAREHOUSE_TAG", "almacen"),
		},
	}

	if cfg.Report.TopProducts < 1 {
		return nil, fmt.Errorf("config: REPORT_TOP_PRODUCTS debe ser >= 1")
	}
	if cfg.Report.PageBreakY <= 0 {
		return nil, fmt.Errorf("config: REPORT_PAGE_BREAK_Y debe ser positivo")
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
