package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	AdviceModeSummary = "summary"
	AdviceModePlan    = "plan"

	AIModeMock   = "mock"
	AIModeOpenAI = "openai"

	// DefaultOpenAIModel is used when OPENAI_MODEL is not set.
	DefaultOpenAIModel = "gpt-4.1-2025-04-14"

	// DefaultSheetTab is the spreadsheet tab holding the workout log.
	DefaultSheetTab = "Workouts"
)

// GoogleConfig holds the service-account credentials and the target sheet.
type GoogleConfig struct {
	ServiceAccountEmail string
	PrivateKey          string // literal \n sequences already un-escaped
	SheetsID            string
	SheetTab            string
}

// MissingRequired returns the env var names that must be set before the
// pipeline can talk to Google Sheets.
func (c GoogleConfig) MissingRequired() []string {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(c.ServiceAccountEmail) == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	if strings.TrimSpace(c.SheetsID) == "" {
		missing = append(missing, "GOOGLE_SHEETS_ID")
	}
	return missing
}

func (c GoogleConfig) IsConfigured() bool {
	return len(c.MissingRequired()) == 0
}

// Config holds the application configuration, built once at startup.
type Config struct {
	Env  string // local | staging | prod
	Port int

	// CORS
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// Rate Limiting
	RateLimitRPS   int
	RateLimitBurst int

	// Google Sheets
	Google GoogleConfig

	// Pipeline
	AdviceMode string // summary | plan
	EntryLimit int

	// AI
	AIMode           string // mock | openai
	AITemperature    float64
	AITimeoutSeconds int
	OpenAIAPIKey     string
	OpenAIModel      string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	// APP_ENV (fallback to ENV for backward compat, default: local)
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	// PORT (default: 8080)
	port := envInt("PORT", 8080)

	// ---------- CORS ----------
	corsOrigins := parseCORSOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"), env)
	corsAllowCreds := os.Getenv("CORS_ALLOW_CREDENTIALS") == "1"

	// ---------- Rate Limiting ----------
	rateLimitRPS := envInt("RATE_LIMIT_RPS", 0)
	rateLimitBurst := envInt("RATE_LIMIT_BURST", 0)

	// ---------- Google Sheets ----------
	// GOOGLE_PRIVATE_KEY usually arrives with escaped newlines when set
	// through a .env file or a deploy panel.
	privateKey := strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")

	sheetTab := strings.TrimSpace(os.Getenv("SHEET_TAB"))
	if sheetTab == "" {
		sheetTab = DefaultSheetTab
	}

	googleCfg := GoogleConfig{
		ServiceAccountEmail: strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")),
		PrivateKey:          privateKey,
		SheetsID:            strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_ID")),
		SheetTab:            sheetTab,
	}

	// ---------- Pipeline ----------
	adviceMode := strings.ToLower(strings.TrimSpace(os.Getenv("ADVICE_MODE")))
	if adviceMode == "" {
		adviceMode = AdviceModePlan
	}
	if adviceMode != AdviceModeSummary && adviceMode != AdviceModePlan {
		log.Printf("WARNING: unknown ADVICE_MODE=%q, fallback to %s", adviceMode, AdviceModePlan)
		adviceMode = AdviceModePlan
	}

	// ENTRY_LIMIT (default: 10) — how many recent workout rows go to the model
	entryLimit := envInt("ENTRY_LIMIT", 10)
	if entryLimit <= 0 {
		entryLimit = 10
	}

	// ---------- AI ----------
	aiMode := strings.ToLower(strings.TrimSpace(os.Getenv("AI_MODE")))
	if aiMode == "" {
		aiMode = AIModeMock
	}
	if aiMode != AIModeMock && aiMode != AIModeOpenAI {
		log.Printf("WARNING: unknown AI_MODE=%q, fallback to %s", aiMode, AIModeMock)
		aiMode = AIModeMock
	}

	aiTemperature := envFloat("AI_TEMPERATURE", 0.4)
	if aiTemperature < 0 {
		aiTemperature = 0
	}
	if aiTemperature > 2 {
		aiTemperature = 2
	}

	aiTimeoutSeconds := envInt("AI_TIMEOUT_SECONDS", 30)
	if aiTimeoutSeconds <= 0 {
		aiTimeoutSeconds = 30
	}

	openAIAPIKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	openAIModel := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if openAIModel == "" {
		openAIModel = DefaultOpenAIModel
	}

	if aiMode == AIModeOpenAI && openAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required when AI_MODE=openai")
	}

	return &Config{
		Env:  env,
		Port: port,

		CORSAllowedOrigins:   corsOrigins,
		CORSAllowCredentials: corsAllowCreds,

		RateLimitRPS:   rateLimitRPS,
		RateLimitBurst: rateLimitBurst,

		Google: googleCfg,

		AdviceMode: adviceMode,
		EntryLimit: entryLimit,

		AIMode:           aiMode,
		AITemperature:    aiTemperature,
		AITimeoutSeconds: aiTimeoutSeconds,
		OpenAIAPIKey:     openAIAPIKey,
		OpenAIModel:      openAIModel,
	}
}

// RequireGoogle returns a user-facing error when a Sheets credential is
// missing. The message surfaces the first missing env var verbatim.
func (c *Config) RequireGoogle() error {
	missing := c.Google.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing env var: %s", missing[0])
}

// parseCORSOrigins parses CORS_ALLOWED_ORIGINS env var.
// In local mode, defaults to localhost origins if empty.
func parseCORSOrigins(raw, env string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if env == "local" {
			return []string{"http://localhost:3000", "http://localhost:8080"}
		}
		return nil // prod: deny by default
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}
