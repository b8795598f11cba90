package main

import (
	"log"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fdg312/workout-helper/internal/config"
	"github.com/fdg312/workout-helper/internal/httpserver"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	validateProductionConfig(cfg)

	server := httpserver.New(cfg)

	log.Fatal(server.Start())
}

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed — only masked indicators ("set" / "not set").
func printStartupBanner(cfg *config.Config) {
	log.Println("========== Workout Helper ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  port             = %d", cfg.Port)
	log.Printf("  rate_limit       = %d rps, burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ---- Google Sheets ----
	log.Println("---- sheets ----")
	log.Printf("  service_account  = %s", nonEmptyOrDash(cfg.Google.ServiceAccountEmail))
	log.Printf("  private_key      = %s", setOrNot(cfg.Google.PrivateKey))
	log.Printf("  sheets_id        = %s", setOrNot(cfg.Google.SheetsID))
	log.Printf("  sheet_tab        = %s", cfg.Google.SheetTab)
	if !cfg.Google.IsConfigured() {
		log.Printf("  (incomplete — analyze requests will fail until all three are set)")
	}

	// ---- Advice ----
	log.Println("---- advice ----")
	log.Printf("  advice_mode      = %s", cfg.AdviceMode)
	log.Printf("  entry_limit      = %d", cfg.EntryLimit)

	// ---- AI ----
	log.Println("---- ai ----")
	log.Printf("  ai_mode          = %s", cfg.AIMode)
	if cfg.AIMode == config.AIModeOpenAI {
		log.Printf("  openai_model     = %s", cfg.OpenAIModel)
		log.Printf("  openai_api_key   = %s", setOrNot(cfg.OpenAIAPIKey))
		log.Printf("  ai_temperature   = %.2f", cfg.AITemperature)
		log.Printf("  ai_timeout       = %ds", cfg.AITimeoutSeconds)
	}

	log.Println("====================================")
}

// validateProductionConfig performs fatal checks that only matter in non-local envs.
func validateProductionConfig(cfg *config.Config) {
	isProd := cfg.Env == "production" || cfg.Env == "staging"
	if !isProd {
		return
	}

	if missing := cfg.Google.MissingRequired(); len(missing) > 0 {
		log.Fatalf("FATAL sheets: Google Sheets config is incomplete in %s — missing: %s", cfg.Env, strings.Join(missing, ", "))
	}
	if cfg.AIMode == config.AIModeMock {
		log.Printf("WARN ai: AI_MODE=mock in %s — advice will be canned", cfg.Env)
	}
}

// ---- helpers (no secrets) ----

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func nonEmptyOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
