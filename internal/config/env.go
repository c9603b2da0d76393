package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env carries SERIESGEN_* overrides. Empty fields leave the Spec untouched.
type Env struct {
	ConfigPath string `env:"CONFIG"`

	RoutesDir  string `env:"ROUTES_DIR"`
	PagesDir   string `env:"PAGES_DIR"`
	OutputDir  string `env:"OUTPUT_DIR"`
	RoutesFile string `env:"ROUTES_FILE"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Prefix    string `env:"S3_PREFIX"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
}

// EnvPrefix is prepended to every variable name of Env.
const EnvPrefix = "SERIESGEN_"

// LoadEnv reads the given dotenv files (".env" when none are given) into the
// process environment without overriding variables already set, then parses
// the SERIESGEN_* variables. Missing dotenv files are ignored.
func LoadEnv(dotenvFiles ...string) (Env, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return parseEnv(env.Options{Prefix: EnvPrefix})
}

// ParseEnvMap parses overrides from an explicit variable map.
func ParseEnvMap(vars map[string]string) (Env, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Apply copies the non-empty overrides onto s.
func (e Env) Apply(s *Spec) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.Paths.RoutesDir, e.RoutesDir)
	set(&s.Paths.PagesDir, e.PagesDir)
	set(&s.Paths.OutputDir, e.OutputDir)
	set(&s.Paths.RoutesFile, e.RoutesFile)

	set(&s.Storage.Bucket, e.S3Bucket)
	set(&s.Storage.Prefix, e.S3Prefix)
	set(&s.Storage.Endpoint, e.S3Endpoint)
	set(&s.Storage.Region, e.S3Region)
	set(&s.Storage.AccessKey, e.S3AccessKey)
	set(&s.Storage.SecretKey, e.S3SecretKey)
}
