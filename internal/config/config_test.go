package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "forms_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example , ,http://b.example")

	LoadConfig()

	if DbHost != "db.internal" {
		t.Fatalf("expected DB_HOST override, got %s", DbHost)
	}
	if ServerPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", ServerPort)
	}
	if len(CORSAllowedOrigins) != 2 || CORSAllowedOrigins[1] != "http://b.example" {
		t.Fatalf("unexpected origins %v", CORSAllowedOrigins)
	}
	if dsn := DSN(); !strings.Contains(dsn, "host=db.internal") || !strings.Contains(dsn, "dbname=forms_test") {
		t.Fatalf("unexpected dsn %s", dsn)
	}
}
