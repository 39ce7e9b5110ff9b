// Package config resolves command line settings from defaults, an optional
// YAML file, a .env file and GOSAP_* environment variables, in that order.
// Flags are applied last by the command layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// DefaultFile is read when no file is named and it exists.
const DefaultFile = "gosap.yaml"

type Config struct {
	// Program is the registered program name; empty selects the default
	// of the generation.
	Program     string        `yaml:"program"`
	Generation  string        `yaml:"generation"`
	Visible     bool          `yaml:"visible"`
	Units       string        `yaml:"units"`
	CallTimeout time.Duration `yaml:"call_timeout"`
	DispIDCache int           `yaml:"dispid_cache"`
	LogLevel    string        `yaml:"log_level"`
	LogFile     string        `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Generation:  "v15",
		Visible:     true,
		Units:       enums.KNmC.String(),
		CallTimeout: 2 * time.Minute,
		DispIDCache: 256,
		LogLevel:    "info",
	}
}

// Load resolves the configuration. An empty path reads DefaultFile when it
// exists; a named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, required := path, true
	if file == "" {
		file, required = DefaultFile, false
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (c *Config) applyEnv() error {
	for key, dst := range map[string]*string{
		"GOSAP_PROGRAM":    &c.Program,
		"GOSAP_GENERATION": &c.Generation,
		"GOSAP_UNITS":      &c.Units,
		"GOSAP_LOG_LEVEL":  &c.LogLevel,
		"GOSAP_LOG_FILE":   &c.LogFile,
	} {
		if v := env(key); v != "" {
			*dst = v
		}
	}
	if v := env("GOSAP_VISIBLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GOSAP_VISIBLE: %w", err)
		}
		c.Visible = b
	}
	if v := env("GOSAP_CALL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GOSAP_CALL_TIMEOUT: %w", err)
		}
		c.CallTimeout = d
	}
	if v := env("GOSAP_DISPID_CACHE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOSAP_DISPID_CACHE: %w", err)
		}
		c.DispIDCache = n
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.GenerationValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.UnitsValue(); err != nil {
		errs = append(errs, err)
	}
	if c.CallTimeout < 0 {
		errs = append(errs, fmt.Errorf("call timeout %s is negative", c.CallTimeout))
	}
	if c.DispIDCache <= 0 {
		errs = append(errs, fmt.Errorf("dispid cache size %d must be positive", c.DispIDCache))
	}
	return errors.Join(errs...)
}

func (c *Config) GenerationValue() (sap.Generation, error) {
	return sap.ParseGeneration(c.Generation)
}

// UnitsValue accepts a unit symbol such as kN_m_C or its identifier.
func (c *Config) UnitsValue() (enums.Units, error) {
	return enums.UnitsTable.Parse(c.Units)
}

// ProgramName is Program, or the default program of the generation.
func (c *Config) ProgramName() string {
	if c.Program != "" {
		return c.Program
	}
	g, err := c.GenerationValue()
	if err != nil {
		g = sap.V15
	}
	return sap.DefaultProgram(g)
}
