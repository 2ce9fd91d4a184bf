// Package config loads the shared pipeline configuration. Connection
// settings and file locations live in a YAML file; secrets come from the
// environment (optionally via a .env file) so they never end up in
// version-controlled config.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Neo4jConfig holds graph store connection settings. Password is resolved
// from NEO4J_PASSWORD when empty.
type Neo4jConfig struct {
	URI      string `yaml:"uri" validate:"required,uri"`
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PathsConfig holds input and output file locations.
type PathsConfig struct {
	OrdersCSV  string `yaml:"orders_csv" validate:"required"`
	ReturnsCSV string `yaml:"returns_csv" validate:"required"`
	PeopleCSV  string `yaml:"people_csv" validate:"required"`
	CleanCSV   string `yaml:"clean_csv" validate:"required"`
	OutputDir  string `yaml:"output_dir" validate:"required"`
}

// MLConfig holds training parameters. Defaults mirror the tutorial run:
// stratified 80/20 split, seed 42, 20 random-search candidates, 3 CV folds.
type MLConfig struct {
	TestFraction     float64 `yaml:"test_fraction" validate:"gt=0,lt=1"`
	Seed             int64   `yaml:"seed"`
	SearchCandidates int     `yaml:"search_candidates" validate:"min=1"`
	CVFolds          int     `yaml:"cv_folds" validate:"min=2"`
	WriteBack        bool    `yaml:"write_back"`
}

// S3Config configures optional artifact upload. Credentials come from the
// standard AWS environment variables.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// Config is the root configuration shared by all pipeline commands.
type Config struct {
	Neo4j       Neo4jConfig `yaml:"neo4j"`
	Paths       PathsConfig `yaml:"paths"`
	ML          MLConfig    `yaml:"ml"`
	S3          S3Config    `yaml:"s3"`
	PostgresDSN string      `yaml:"postgres_dsn"`
	PushGateway string      `yaml:"push_gateway"`
	LoadBatch   int         `yaml:"load_batch" validate:"min=1"`
}

// Default returns the configuration used when a field is left unset.
func Default() Config {
	return Config{
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Paths: PathsConfig{
			OrdersCSV:  "data/orders.csv",
			ReturnsCSV: "data/returns.csv",
			PeopleCSV:  "data/people.csv",
			CleanCSV:   "data/orders_clean.csv",
			OutputDir:  "out",
		},
		ML: MLConfig{
			TestFraction:     0.2,
			Seed:             42,
			SearchCandidates: 20,
			CVFolds:          3,
		},
		LoadBatch: 1000,
	}
}

// Load reads and validates a YAML config file. A missing path yields the
// defaults. A .env file next to the working directory is honored for
// secrets; absence is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if cfg.Neo4j.Password == "" {
		cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
