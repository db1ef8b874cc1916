// Package config holds the process-wide configuration. A Config is built
// once at startup and injected into the components that need it; nothing
// reads configuration from ambient globals.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/siddarthan007/laf/internal/model"
)

// SMTP configures the outgoing mail server. An empty Host disables mail
// delivery (notifications fall back to logging).
type SMTP struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	SenderName string
}

// Config is the immutable process configuration.
type Config struct {
	// MatchThreshold is the minimum confidence score for creating a match.
	MatchThreshold float64
	// VectorDim is the embedding dimensionality shared by both modalities.
	VectorDim int
	// MaxMatches caps how many matches a single orchestration run may create.
	MaxMatches int
	// LocationBoost is the maximum additive score boost from location
	// proximity, applied only to near-threshold candidates.
	LocationBoost float64
	// Office is the administrative-office identity disclosed for office reports.
	Office model.Contact

	EmbedURL     string
	EmbedTimeout time.Duration

	UploadMaxBytes int64

	SMTP SMTP
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		MatchThreshold: 0.65,
		VectorDim:      512,
		MaxMatches:     20,
		LocationBoost:  0.05,
		Office: model.Contact{
			Name:          "Campus Admin Office",
			Email:         "admin-office@university.local",
			ContactNumber: "000-000-0000",
		},
		EmbedURL:       "http://localhost:8600",
		EmbedTimeout:   30 * time.Second,
		UploadMaxBytes: 5 << 20,
		SMTP: SMTP{
			Port:       587,
			From:       "noreply@lostfound.local",
			SenderName: "Lost & Found Desk",
		},
	}
}

// FromEnv returns the default configuration with LAF_* environment
// overrides applied.
func FromEnv() (Config, error) {
	cfg := Default()

	var err error
	if cfg.MatchThreshold, err = envFloat("LAF_MATCH_THRESHOLD", cfg.MatchThreshold); err != nil {
		return cfg, err
	}
	if cfg.VectorDim, err = envInt("LAF_VECTOR_DIM", cfg.VectorDim); err != nil {
		return cfg, err
	}
	if cfg.MaxMatches, err = envInt("LAF_MAX_MATCHES", cfg.MaxMatches); err != nil {
		return cfg, err
	}
	if cfg.LocationBoost, err = envFloat("LAF_LOCATION_BOOST", cfg.LocationBoost); err != nil {
		return cfg, err
	}
	if cfg.SMTP.Port, err = envInt("LAF_SMTP_PORT", cfg.SMTP.Port); err != nil {
		return cfg, err
	}

	cfg.Office.Name = envString("LAF_OFFICE_NAME", cfg.Office.Name)
	cfg.Office.Email = envString("LAF_OFFICE_EMAIL", cfg.Office.Email)
	cfg.Office.ContactNumber = envString("LAF_OFFICE_CONTACT", cfg.Office.ContactNumber)
	cfg.EmbedURL = envString("LAF_EMBED_URL", cfg.EmbedURL)
	cfg.SMTP.Host = envString("LAF_SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Username = envString("LAF_SMTP_USER", cfg.SMTP.Username)
	cfg.SMTP.Password = envString("LAF_SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = envString("LAF_SMTP_FROM", cfg.SMTP.From)
	cfg.SMTP.SenderName = envString("LAF_SMTP_SENDER", cfg.SMTP.SenderName)

	if cfg.MatchThreshold < 0 || cfg.MatchThreshold > 1 {
		return cfg, fmt.Errorf("match threshold %v outside [0, 1]", cfg.MatchThreshold)
	}
	if cfg.VectorDim <= 0 {
		return cfg, fmt.Errorf("vector dimensionality must be positive, got %d", cfg.VectorDim)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}
