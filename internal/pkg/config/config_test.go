package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY": "s3cr3t",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %q", cfg.Port)
	}
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.CookieName != "_comclic_auth" {
		t.Errorf("expected cookie _comclic_auth, got %q", cfg.Auth.CookieName)
	}
	if cfg.Mongo.Database != "comclic" {
		t.Errorf("expected database comclic, got %q", cfg.Mongo.Database)
	}
	if cfg.Mail.Port != 465 || cfg.Mail.Workers != 2 {
		t.Errorf("unexpected mail defaults: %+v", cfg.Mail)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("expected 15s request timeout, got %s", cfg.RequestTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development env by default")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("expected explicit default cors origin, got %v", cfg.CORSOrigins)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY":       "s3cr3t",
		"ENV":              "production",
		"ACCESS_TOKEN_TTL": "2h",
		"COOKIE_SECURE":    "true",
		"CORS_ORIGINS":     "https://a.test,https://b.test",
		"REDIS_DB":         "3",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Error("expected production env")
	}
	if cfg.Auth.AccessTokenTTL != 2*time.Hour || !cfg.Auth.CookieSecure {
		t.Errorf("unexpected auth config: %+v", cfg.Auth)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.test" {
		t.Errorf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.Redis.DB)
	}
}

func TestLoadFrom_RequiresSecret(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected an error without SECRET_KEY")
	}
}

func TestLoadFrom_RejectsNonPositiveTTL(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY":       "s3cr3t",
		"ACCESS_TOKEN_TTL": "0s",
	}))
	if err == nil {
		t.Fatal("expected an error for zero ttl")
	}
}

func TestLoadFrom_RejectsWildcardOrigin(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY":   "s3cr3t",
		"CORS_ORIGINS": "https://a.test,*",
	}))
	if err == nil {
		t.Fatal("expected error for wildcard origin")
	}
}
