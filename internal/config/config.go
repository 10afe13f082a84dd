package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/dgallion1/brandpost/internal/llm"
	"github.com/dgallion1/brandpost/internal/parser"
)

// FileEnv names the environment variable holding the optional YAML
// overlay path.
const FileEnv = "BRANDPOST_CONFIG"

type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Corpus
	PDFDir             string `yaml:"pdf_dir"`
	ChunksPath         string `yaml:"chunks_path"`
	ChunkKeySuffixOnly bool   `yaml:"chunk_key_suffix_only"`
	ChunkOnStart       bool   `yaml:"chunk_on_start"`
	ParseWorkers       int    `yaml:"parse_workers"`

	// Layout analysis
	HeadingMainSize float64 `yaml:"heading_main_size"`
	HeadingSubSize  float64 `yaml:"heading_sub_size"`
	MergeThreshold  float64 `yaml:"merge_threshold"`
	BoldMarker      string  `yaml:"bold_marker"`

	// Ollama
	OllamaHost         string  `yaml:"ollama_host"`
	GenModel           string  `yaml:"gen_model"`
	GenTemperature     float64 `yaml:"gen_temperature"`
	GenMaxTokens       int     `yaml:"gen_max_tokens"`
	TranslateModel     string  `yaml:"translate_model"`
	TranslateMaxTokens int     `yaml:"translate_max_tokens"`
	Seed               int     `yaml:"seed"`
	MarkdownRetries    int     `yaml:"markdown_retries"`
}

// Load reads the environment and then applies the YAML file at path, if
// any. An empty path falls back to $BRANDPOST_CONFIG. Keys absent from the
// file keep their environment or default value.
func Load(path string) (Config, error) {
	cfg := fromEnv()

	if path == "" {
		path = os.Getenv(FileEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8090"
	}
	if cfg.GenMaxTokens <= 0 {
		cfg.GenMaxTokens = 700
	}
	if cfg.TranslateMaxTokens <= 0 {
		cfg.TranslateMaxTokens = 900
	}
	if cfg.MarkdownRetries <= 0 {
		cfg.MarkdownRetries = 3
	}
	if cfg.ParseWorkers <= 0 {
		cfg.ParseWorkers = 1
	}
	return cfg, nil
}

func fromEnv() Config {
	return Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("API_KEY"),

		PDFDir:             envOr("PDF_DIR", "data/pdfs"),
		ChunksPath:         envOr("CHUNKS_PATH", "chunks/chunks.json"),
		ChunkKeySuffixOnly: envBool("CHUNK_KEY_SUFFIX_ONLY", false),
		ChunkOnStart:       envBool("CHUNK_ON_START", true),
		ParseWorkers:       envInt("PARSE_WORKERS", 1),

		HeadingMainSize: envFloat("HEADING_MAIN_SIZE", 18),
		HeadingSubSize:  envFloat("HEADING_SUB_SIZE", 10),
		MergeThreshold:  envFloat("MERGE_THRESHOLD", 18),
		BoldMarker:      envOr("BOLD_MARKER", "Bold"),

		OllamaHost:         envOr("OLLAMA_HOST", "http://127.0.0.1:11434"),
		GenModel:           envOr("GEN_MODEL", "mistral:latest"),
		GenTemperature:     envFloat("GEN_TEMPERATURE", 0.8),
		GenMaxTokens:       envInt("GEN_MAX_TOKENS", 700),
		TranslateModel:     envOr("TRANSLATE_MODEL", "zongwei/gemma3-translator:4b"),
		TranslateMaxTokens: envInt("TRANSLATE_MAX_TOKENS", 900),
		Seed:               envInt("SEED", 42),
		MarkdownRetries:    envInt("MARKDOWN_RETRIES", 3),
	}
}

// FieldError reports one invalid setting.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &FieldError{Field: field, Reason: reason})
	}

	if c.PDFDir == "" {
		bad("PDF_DIR", "is required")
	}
	if c.ChunksPath == "" {
		bad("CHUNKS_PATH", "is required")
	}
	if c.HeadingSubSize <= 0 {
		bad("HEADING_SUB_SIZE", "must be positive")
	}
	if c.HeadingMainSize <= c.HeadingSubSize {
		bad("HEADING_MAIN_SIZE", "must be larger than HEADING_SUB_SIZE")
	}
	if c.MergeThreshold <= 0 {
		bad("MERGE_THRESHOLD", "must be positive")
	}
	if c.BoldMarker == "" {
		bad("BOLD_MARKER", "is required")
	}
	if u, err := url.Parse(c.OllamaHost); err != nil || u.Scheme == "" || u.Host == "" {
		bad("OLLAMA_HOST", "must be an absolute URL")
	}
	if c.GenModel == "" {
		bad("GEN_MODEL", "is required")
	}
	if c.TranslateModel == "" {
		bad("TRANSLATE_MODEL", "is required")
	}
	return errors.Join(errs...)
}

// Parser returns the layout-analysis settings.
func (c Config) Parser() parser.Config {
	cfg := parser.DefaultConfig()
	cfg.HeadingMainSize = c.HeadingMainSize
	cfg.HeadingSubSize = c.HeadingSubSize
	cfg.MergeThreshold = c.MergeThreshold
	cfg.BoldMarker = c.BoldMarker
	return cfg
}

func (c Config) Chunker() chunker.Config {
	return chunker.Config{Dir: c.PDFDir, SuffixOnlyKeys: c.ChunkKeySuffixOnly, Workers: c.ParseWorkers}
}

// GenParams are the sampling options of the drafting model.
func (c Config) GenParams() llm.Params {
	return llm.Params{Seed: c.Seed, Temperature: c.GenTemperature, MaxTokens: c.GenMaxTokens}
}

// TranslateParams share the drafting seed and temperature but allow a
// longer completion.
func (c Config) TranslateParams() llm.Params {
	return llm.Params{Seed: c.Seed, Temperature: c.GenTemperature, MaxTokens: c.TranslateMaxTokens}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
