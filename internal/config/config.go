package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Paths    PathsConfig
	Verify   VerifyConfig
	Render   RenderConfig
	Template TemplateConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type PathsConfig struct {
	TemplatesDir   string
	ThemesDir      string
	OutputDir      string
	DBPath         string
	ParametersFile string
}

type VerifyConfig struct {
	// BaseURL é a URL do serviço público de verificação; o código entra
	// como query parameter.
	BaseURL string
	Salt    string
	QRSize  int
}

type RenderConfig struct {
	Orientation string
	Workers     int
	ChromeBin   string
}

type TemplateConfig struct {
	// Engine seleciona a estratégia de substituição: "replace" (troca
	// literal de {{chave}}) ou "pongo2" (engine completa estilo Jinja2).
	Engine string
}

func Load() *Config {
	// Carrega .env se existir (desenvolvimento); em produção usa env direto
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	qrSize, _ := strconv.Atoi(getEnv("VERIFY_QR_SIZE", "256"))
	workers, _ := strconv.Atoi(getEnv("RENDER_WORKERS", "0"))

	return &Config{
		App: AppConfig{
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Paths: PathsConfig{
			TemplatesDir:   getEnv("TEMPLATES_DIR", "./templates"),
			ThemesDir:      getEnv("THEMES_DIR", "./themes"),
			OutputDir:      getEnv("OUTPUT_DIR", "./output"),
			DBPath:         getEnv("DB_PATH", "./data/nepemcert.db"),
			ParametersFile: getEnv("PARAMETERS_FILE", "./config/parameters.json"),
		},
		Verify: VerifyConfig{
			BaseURL: getEnv("VERIFY_BASE_URL", "https://nepemufsc.com/verificar-certificados"),
			Salt:    getEnv("VERIFY_SALT", "NEPEMCERT"),
			QRSize:  qrSize,
		},
		Render: RenderConfig{
			Orientation: getEnv("RENDER_ORIENTATION", "landscape"),
			Workers:     workers,
			ChromeBin:   getEnv("CHROME_BIN", ""),
		},
		Template: TemplateConfig{
			Engine: getEnv("TEMPLATE_ENGINE", "replace"),
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
