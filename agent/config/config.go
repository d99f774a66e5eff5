// Package config loads the optional HCL config file. A missing file yields
// defaults; environment variables override the llm and database settings at
// the call sites that use them.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type Config struct {
	Detector *DetectorConfig `hcl:"detector,block"`
	LLM      *LLMConfig      `hcl:"llm,block"`
	Database *DatabaseConfig `hcl:"database,block"`
}

type DetectorConfig struct {
	Threshold  float64  `hcl:"threshold,optional"`
	ExtraTerms []string `hcl:"extra_terms,optional"`
	Segmenter  string   `hcl:"segmenter,optional"` // "builtin" or "gse"
}

type LLMConfig struct {
	Model       string  `hcl:"model,optional"`
	BaseURL     string  `hcl:"base_url,optional"`
	MaxTokens   int     `hcl:"max_tokens,optional"`
	Temperature float64 `hcl:"temperature,optional"`
}

type DatabaseConfig struct {
	URL string `hcl:"url,optional"`
}

func Default() *Config {
	return &Config{
		Detector: &DetectorConfig{
			Threshold: 0.1,
			Segmenter: "builtin",
		},
		LLM: &LLMConfig{
			Model:       "deepseek-chat",
			MaxTokens:   512,
			Temperature: 1.3,
		},
		Database: &DatabaseConfig{},
	}
}

// Load reads an HCL config file, returning defaults when it does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Fill in defaults for anything the file left out.
	def := Default()
	if cfg.Detector == nil {
		cfg.Detector = def.Detector
	}
	if cfg.Detector.Threshold == 0 {
		cfg.Detector.Threshold = def.Detector.Threshold
	}
	if cfg.Detector.Segmenter == "" {
		cfg.Detector.Segmenter = def.Detector.Segmenter
	}
	if cfg.LLM == nil {
		cfg.LLM = def.LLM
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = def.LLM.Model
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = def.LLM.MaxTokens
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = def.LLM.Temperature
	}
	if cfg.Database == nil {
		cfg.Database = def.Database
	}
	return &cfg, nil
}
