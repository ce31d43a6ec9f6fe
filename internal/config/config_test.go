package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Set only the required env var
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Import.Delimiter != "," {
		t.Errorf("Import.Delimiter = %q, want %q", cfg.Import.Delimiter, ",")
	}
	if cfg.Import.HeaderScanRows != 5 {
		t.Errorf("Import.HeaderScanRows = %d, want 5", cfg.Import.HeaderScanRows)
	}
	if cfg.Parser.WeightValueSpec != 0.25 {
		t.Errorf("Parser.WeightValueSpec = %v, want 0.25", cfg.Parser.WeightValueSpec)
	}
	if cfg.Parser.SimilarityFloor != 0.15 {
		t.Errorf("Parser.SimilarityFloor = %v, want 0.15", cfg.Parser.SimilarityFloor)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("IMPORT_DELIMITER", ";")
	os.Setenv("PARSER_SIMILARITY_FLOOR", "0.3")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("IMPORT_DELIMITER")
		os.Unsetenv("PARSER_SIMILARITY_FLOOR")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Import.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune() = %q, want ';'", cfg.Import.DelimiterRune())
	}
	if cfg.Parser.SimilarityFloor != 0.3 {
		t.Errorf("Parser.SimilarityFloor = %v, want 0.3", cfg.Parser.SimilarityFloor)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// DB_URL works as a fallback for DATABASE_URL
	os.Setenv("DB_URL", "postgres://localhost/alttest")
	defer os.Unsetenv("DB_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.URL != "postgres://localhost/alttest" {
		t.Errorf("Database.URL = %q, want %q", cfg.Database.URL, "postgres://localhost/alttest")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DB_URL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without DATABASE_URL")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("PARSER_SIMILARITY_FLOOR", "1.5")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("PARSER_SIMILARITY_FLOOR")
	}()

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject similarity floor above 1")
	}
}

func TestValidate_APIKeyGateNeedsKeys(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/test")
	os.Setenv("REQUIRE_API_KEY", "true")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("REQUIRE_API_KEY")
	}()

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject REQUIRE_API_KEY without API_KEYS")
	}
}

func TestLoadVocabulary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	content := `synonyms:
  "internal sku": partNumber
categories:
  gasket: Seals
suppliers:
  - Bolt Depot
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}
	if v.Synonyms["internal sku"] != "partNumber" {
		t.Errorf("synonym = %q, want partNumber", v.Synonyms["internal sku"])
	}
	if v.Categories["gasket"] != "Seals" {
		t.Errorf("category = %q, want Seals", v.Categories["gasket"])
	}
	if len(v.Suppliers) != 1 || v.Suppliers[0] != "Bolt Depot" {
		t.Errorf("suppliers = %v", v.Suppliers)
	}
}

func TestLoadVocabulary_EmptyPath(t *testing.T) {
	v, err := LoadVocabulary("")
	if err != nil {
		t.Fatalf("LoadVocabulary(\"\") error = %v", err)
	}
	if v == nil {
		t.Fatal("expected empty vocabulary, got nil")
	}
}
