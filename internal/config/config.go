package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// UploadValidationConfig holds upload validation settings
type UploadValidationConfig struct {
	MaxFileSize       string   `yaml:"max_file_size"`
	BlockedExtensions []string `yaml:"blocked_extensions"`
}

// ByteStoreConfig holds settings for the on-disk byte store
type ByteStoreConfig struct {
	// FilesDir is the directory holding uploaded bytes, relative to the
	// content root.
	FilesDir   string `yaml:"files_dir"`
	CreateDirs bool   `yaml:"create_dirs"`
}

// CatalogConfig holds the complete catalog service configuration
type CatalogConfig struct {
	Validation UploadValidationConfig `yaml:"validation"`
	Store      ByteStoreConfig        `yaml:"store"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Catalog CatalogConfig `yaml:"catalog"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from the specified path
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/catalog.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var parsed MainConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if parsed.Catalog.Store.FilesDir == "" {
		parsed.Catalog.Store.FilesDir = "app/build/files"
	}

	// Store config globally
	Config = parsed

	log.Println("Catalog configuration loaded successfully from config/catalog.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
