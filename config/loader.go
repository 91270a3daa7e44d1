package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// configDirEnv points every binary at an explicit config directory, searched first.
const configDirEnv = "EXAMHUB_CONFIG_DIR"

// New loads config.yaml, overlays environment variables and fills defaults.
// It looks in $EXAMHUB_CONFIG_DIR, then in ./, ./config, ../config and ../../config.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// LoadWithEnv reads name.yaml from the first search directory that has it, then
// applies environment overrides: POSTGRES_SSLMODE sets postgres.sslMode.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	yamlKeys := k.Raw()
	envOverrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	})
	if err := k.Load(envOverrides, nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	candidates := make([]string, 0, len(dirs)+2)
	if dir := os.Getenv(configDirEnv); dir != "" {
		candidates = append(candidates, dir)
	}
	candidates = append(candidates, ".")

	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", filename, strings.Join(candidates, ", "))
}

// canonicalizeEnvKey turns an env var name into a koanf path, reusing the
// spelling of keys already present in the YAML so camelCase keys still match.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey returns the key of level equal to segment once case and punctuation
// are ignored, plus its nested map. Unknown segments are returned as-is.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	needle := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == needle {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_{n}_HOST, _PORT, _USERNAME and _PASSWORD
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
