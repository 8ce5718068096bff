// Package config loads runtime settings from the environment and optional
// dotenv files.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-cuestionario/pkg/catalog"
)

// DefaultEnvFiles are loaded, when present, before parsing the environment.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Config holds the three reference dataset locations plus ambient knobs.
// Locations accept http(s) URLs or file paths.
type Config struct {
	UnidadesURL      string        `env:"API_URL_UA" validate:"required"`
	AcademicosURL    string        `env:"API_URL_ACADEMICOS" validate:"required"`
	CuestionariosURL string        `env:"API_URL_CUESTIONARIOS" validate:"required"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s" validate:"gte=0s"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=panic fatal error warn warning info debug trace"`
	DebugFormat      string        `env:"DEBUG_FORMAT" envDefault:"json" validate:"oneof=json yaml"`
}

// Sources holds the parsed dataset locations.
type Sources struct {
	Unidades      catalog.Source
	Academicos    catalog.Source
	Cuestionarios catalog.Source
}

var validate = validator.New()

// LoadEnv loads the dotenv files that exist and returns how many were
// read. Variables already set in the process win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, errors.Wrap(err, "config: load env files")
	}
	return len(existing), nil
}

// Load reads envFiles (DefaultEnvFiles when none are given), parses the
// environment and validates the result.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse environment")
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required locations and enumerated values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return errors.Errorf("config: invalid %s", strings.Join(fields, ", "))
		}
		return errors.Wrap(err, "config: validate")
	}
	return nil
}

// Sources parses the configured locations.
func (c *Config) Sources() (Sources, error) {
	var (
		out Sources
		err error
	)
	if out.Unidades, err = catalog.ParseSource(c.UnidadesURL); err != nil {
		return Sources{}, errors.Wrap(err, "config: API_URL_UA")
	}
	if out.Academicos, err = catalog.ParseSource(c.AcademicosURL); err != nil {
		return Sources{}, errors.Wrap(err, "config: API_URL_ACADEMICOS")
	}
	if out.Cuestionarios, err = catalog.ParseSource(c.CuestionariosURL); err != nil {
		return Sources{}, errors.Wrap(err, "config: API_URL_CUESTIONARIOS")
	}
	return out, nil
}

func (c *Config) normalize() {
	c.UnidadesURL = strings.TrimSpace(c.UnidadesURL)
	c.AcademicosURL = strings.TrimSpace(c.AcademicosURL)
	c.CuestionariosURL = strings.TrimSpace(c.CuestionariosURL)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DebugFormat = strings.ToLower(strings.TrimSpace(c.DebugFormat))
}
