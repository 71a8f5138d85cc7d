// Package config resolves runtime settings for a weft application from
// an optional weft.yaml, environment variables, and command-line flags.
// Precedence is flags over environment over file over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the optional weft.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Debug bool   `yaml:"debug,omitempty"`
}

// ServerConfig contains network settings.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// DataConfig contains dataset locations.
type DataConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	AppName   string
	Host      string
	Port      int
	Debug     bool
	DataDir   string
	MapboxKey string
}

// Addr returns the host:port the server should listen on.
func (r *Resolved) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LoadOptional reads weft.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weft.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weft.yaml: %w", err)
	}

	return &cfg, nil
}

// Flags returns the standard application flag set. Call Resolve with
// the parsed set to fold flag values into the configuration.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("host", "", "address to bind the server to")
	fs.IntP("port", "p", 0, "port to listen on")
	fs.Bool("debug", false, "enable verbose logging")
	fs.String("data-dir", "", "directory holding example datasets")
	return fs
}

// Resolve loads weft.yaml from dir (if present) and applies
// environment and flag overrides. fs may be nil when the caller has no
// command line.
func Resolve(name, dir string, fs *pflag.FlagSet) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		AppName: strings.TrimSpace(cfg.App.Name),
		Host:    strings.TrimSpace(cfg.Server.Host),
		Port:    cfg.Server.Port,
		Debug:   cfg.App.Debug,
		DataDir: strings.TrimSpace(cfg.Data.Dir),
	}
	if r.AppName == "" {
		r.AppName = name
	}
	if r.Host == "" {
		r.Host = "localhost"
	}
	if r.Port == 0 {
		r.Port = 8080
	}
	if r.DataDir == "" {
		r.DataDir = dir
	}

	if v := os.Getenv("WEFT_HOST"); v != "" {
		r.Host = v
	}
	if v := os.Getenv("WEFT_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid WEFT_PORT %q", v)
		}
		r.Port = port
	}
	if v := os.Getenv("WEFT_DEBUG"); v == "1" || strings.EqualFold(v, "true") {
		r.Debug = true
	}
	r.MapboxKey = os.Getenv("MAPBOX_API_KEY")

	if fs != nil {
		if err := applyFlags(r, fs); err != nil {
			return nil, err
		}
	}

	if r.Port <= 0 || r.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", r.Port)
	}
	return r, nil
}

func applyFlags(r *Resolved, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "host":
			r.Host, err = fs.GetString("host")
		case "port":
			r.Port, err = fs.GetInt("port")
		case "debug":
			r.Debug, err = fs.GetBool("debug")
		case "data-dir":
			r.DataDir, err = fs.GetString("data-dir")
		}
	})
	return err
}
