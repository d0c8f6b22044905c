package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory.
const DefaultPath = "netreport.yaml"

type Config struct {
	HostsFile   string        `yaml:"hosts_file"`  // one host per line
	ReportDir   string        `yaml:"report_dir"`  // report.csv and report.html land here
	LogDir      string        `yaml:"log_dir"`     // rotating JSON log
	LogLevel    string        `yaml:"log_level"`   // debug | info | warn | error
	Timezone    string        `yaml:"timezone"`    // IANA name or "Local"
	Concurrency int           `yaml:"concurrency"` // 1 probes hosts one at a time
	ICMP        ICMPConfig    `yaml:"icmp"`
	TCP         TCPConfig     `yaml:"tcp"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

type ICMPConfig struct {
	Mode       string        `yaml:"mode"` // exec | native | auto
	Timeout    time.Duration `yaml:"timeout"`
	Privileged bool          `yaml:"privileged"`
}

type TCPConfig struct {
	Ports   []int         `yaml:"ports"`
	Timeout time.Duration `yaml:"timeout"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"` // relative paths are resolved against ReportDir
}

func Default() Config {
	return Config{
		HostsFile:   "hosts.txt",
		ReportDir:   "reports",
		LogDir:      "logs",
		LogLevel:    "info",
		Timezone:    "Local",
		Concurrency: 1,
		ICMP: ICMPConfig{
			Mode:    "exec",
			Timeout: 10 * time.Second,
		},
		TCP: TCPConfig{
			Ports:   []int{80, 443, 53},
			Timeout: 5 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			File:    "metrics.prom",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MetricsPath is the textfile location, or "" when metrics are disabled.
func (c Config) MetricsPath() string {
	if !c.Metrics.Enabled || c.Metrics.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Metrics.File) {
		return c.Metrics.File
	}
	return filepath.Join(c.ReportDir, c.Metrics.File)
}

func (c *Config) normalize() error {
	def := Default()
	if strings.TrimSpace(c.HostsFile) == "" {
		c.HostsFile = def.HostsFile
	}
	if strings.TrimSpace(c.ReportDir) == "" {
		c.ReportDir = def.ReportDir
	}
	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = def.LogDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	if c.ICMP.Mode == "" {
		c.ICMP.Mode = def.ICMP.Mode
	}
	c.ICMP.Mode = strings.ToLower(c.ICMP.Mode)
	switch c.ICMP.Mode {
	case "exec", "native", "auto":
	default:
		return fmt.Errorf("icmp.mode must be exec, native or auto, got %q", c.ICMP.Mode)
	}
	if c.ICMP.Timeout <= 0 {
		c.ICMP.Timeout = def.ICMP.Timeout
	}
	if c.TCP.Timeout <= 0 {
		c.TCP.Timeout = def.TCP.Timeout
	}
	if len(c.TCP.Ports) == 0 {
		c.TCP.Ports = def.TCP.Ports
	}
	for _, p := range c.TCP.Ports {
		if p < 1 || p > 65535 {
			return fmt.Errorf("tcp.ports: %d is not a valid port", p)
		}
	}
	return nil
}
