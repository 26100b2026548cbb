package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr            string
	GinMode            string
	CORSAllowedOrigins []string
	TokenSecret        string
	GeminiAPIKey       string
	GeminiModel        string
	SeatPreseed        bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	tokenSecret := strings.TrimSpace(os.Getenv("TOKEN_SECRET"))
	if tokenSecret == "" {
		tokenSecret = "aerobook-dev-secret"
	}

	geminiModel := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	// SEAT_PRESEED=false serves every seat available, which is what the
	// deterministic smoke tests want.
	preseed := true
	if raw := strings.TrimSpace(os.Getenv("SEAT_PRESEED")); raw != "" {
		preseed = raw != "false" && raw != "0"
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		CORSAllowedOrigins: origins,
		TokenSecret:        tokenSecret,
		GeminiAPIKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:        geminiModel,
		SeatPreseed:        preseed,
	}
}
