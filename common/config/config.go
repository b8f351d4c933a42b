package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"contests_printer/lib/logger"

	"github.com/xorcare/pointer"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the printer looks for its config
const DefaultPath = "/etc/contests-printer/config.json"

const defaultPort = 5000

type Config struct {
	// ContestsRoot is the directory whose subdirectories are contests
	ContestsRoot string `json:"contests_root" yaml:"contests_root"`
	// PathPrefix is the URL path both endpoints are mounted under, "" means site root
	PathPrefix string `json:"path_prefix" yaml:"path_prefix"`
	// Users maps user name to plain text password
	Users map[string]string `json:"users" yaml:"users"`

	Host *string `json:"host,omitempty" yaml:"host,omitempty"` // leave empty for localhost
	Port int     `json:"port,omitempty" yaml:"port,omitempty"`

	// MetricsPath enables prometheus endpoint (behind the same auth) if not empty
	MetricsPath string `json:"metrics_path,omitempty" yaml:"metrics_path,omitempty"`

	Logger *logger.Config `json:"logger,omitempty" yaml:"logger,omitempty"`
}

// ReadConfig loads config from a JSON document, YAML is accepted as well.
// Config must not be changed after it is read
func ReadConfig(configPath string) (*Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("can not read config: %w", err)
	}

	// yaml.v3 rejects some valid JSON (\/ escape, repeated keys)
	unmarshal := yaml.Unmarshal
	if json.Valid(content) {
		unmarshal = json.Unmarshal
	}

	config := new(Config)
	if err = unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("can not parse config %s: %w", configPath, err)
	}

	// Empty path_prefix means site root, but the key itself must be present
	var prefix struct {
		PathPrefix *string `json:"path_prefix" yaml:"path_prefix"`
	}
	if err = unmarshal(content, &prefix); err != nil {
		return nil, fmt.Errorf("can not parse config %s: %w", configPath, err)
	}
	if prefix.PathPrefix == nil {
		return nil, fmt.Errorf("invalid config %s: no path_prefix specified", configPath)
	}

	fillInConfig(config)

	if err = validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

func fillInConfig(config *Config) {
	if config.Host == nil {
		config.Host = pointer.String("localhost")
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}

	config.PathPrefix = normalizePath(config.PathPrefix)
	if config.MetricsPath != "" {
		config.MetricsPath = normalizePath(config.MetricsPath)
	}
}

func validateConfig(config *Config) error {
	if len(config.ContestsRoot) == 0 {
		return errors.New("no contests_root specified")
	}
	if len(config.Users) == 0 {
		return errors.New("no users specified")
	}
	for user := range config.Users {
		if user == "" {
			return errors.New("empty user name")
		}
		if strings.Contains(user, ":") {
			return fmt.Errorf("user name %q contains ':'", user)
		}
	}
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is out of range", config.Port)
	}
	if config.MetricsPath != "" && config.MetricsPath == config.IndexPath() {
		return fmt.Errorf("metrics_path %q conflicts with path_prefix", config.MetricsPath)
	}
	return nil
}

// normalizePath makes path start with slash and end without it, root becomes ""
func normalizePath(path string) string {
	path = strings.TrimRight(path, "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// IndexPath is the URL of the contests table
func (c *Config) IndexPath() string {
	if c.PathPrefix == "" {
		return "/"
	}
	return c.PathPrefix
}

func (c *Config) Addr() string {
	return net.JoinHostPort(*c.Host, strconv.Itoa(c.Port))
}
