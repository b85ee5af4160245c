package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	fsprovider "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

var configRegex = regexp.MustCompile(`^lazyseq\.(yaml|yml)$`)

const envPrefix = "LAZYSEQ_"

// ErrNoConfigFile is returned when an explicitly requested config file
// does not exist.
var ErrNoConfigFile = errors.New("config file is not found")

// Config holds the settings shared by all commands. Values are layered:
// flag defaults, then the config file, then LAZYSEQ_* environment
// variables, then flags set on the command line.
type Config struct {
	LogLevel   string `koanf:"log-level"`
	LogFormat  string `koanf:"log-format"`
	Count      int    `koanf:"count"`
	Depth      int    `koanf:"depth"`
	Order      string `koanf:"order"`
	Iterations int    `koanf:"iterations"`
}

func findConfigFile(root fs.FS) string {
	dir, err := fs.ReadDir(root, ".")
	if err != nil {
		return ""
	}
	for _, f := range dir {
		if !f.IsDir() && configRegex.MatchString(f.Name()) {
			return f.Name()
		}
	}
	return ""
}

// LoadConfig reads the configuration for a command. path names an
// explicit config file; if it is empty, a lazyseq.yaml or lazyseq.yml in
// the working directory is used when present.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	root, name := fs.FS(os.DirFS(".")), ""
	if path != "" {
		root, name = os.DirFS(filepath.Dir(path)), filepath.Base(path)
		if _, err := fs.Stat(root, name); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoConfigFile, path)
		}
	} else {
		name = findConfigFile(root)
	}

	if name != "" {
		if err := k.Load(fsprovider.Provider(root, name), yamlparser.Parser()); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", name, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil)
	if err != nil {
		return nil, err
	}

	if flags != nil {
		if err = k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err = k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
