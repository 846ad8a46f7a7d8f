package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/pipeline"
	"github.com/matzehuels/ikreport/pkg/report"
)

// configFile is the name of the config file inside configDir.
const configFile = "config.toml"

// Config is the on-disk configuration. Command-line flags override it.
//
//	output_dir = "LaTex"
//	default_name = "IK_solution.tex"
//	columns = true
//	graph = true
//
//	[credits]
//	package = "IK-BT"
//
//	[redis]
//	addr = "localhost:6379"
type Config struct {
	OutputDir   string `toml:"output_dir"`
	DefaultName string `toml:"default_name"`
	Preamble    string `toml:"preamble"`
	Close       string `toml:"close"`
	Title       string `toml:"title"`

	Columns bool `toml:"columns"`
	Align   bool `toml:"align"`
	Fracify bool `toml:"fracify"`
	Graph   bool `toml:"graph"`

	Credits report.Credits `toml:"credits"`
	Redis   RedisConfig    `toml:"redis"`
}

// RedisConfig selects a Redis cache for the serve command.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func defaultConfig() Config {
	ro := report.DefaultOptions()
	return Config{
		OutputDir:   pipeline.DefaultOutputDir,
		DefaultName: report.DefaultName,
		Columns:     ro.Columns,
		Align:       ro.Align,
		Fracify:     ro.Fracify,
		Credits:     ro.Credits,
	}
}

// defaultConfigPath returns the config file location.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config at path over the defaults. With an empty path
// the default location is used and a missing file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) && !explicit {
		cfg = defaultConfig()
		return &cfg, nil
	}
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %s", path, undecoded[0])
	}
	return &cfg, nil
}

// reportOptions returns the formatting options the config describes.
func (cfg *Config) reportOptions() report.Options {
	return report.Options{
		Columns:  cfg.Columns,
		Align:    cfg.Align,
		Fracify:  cfg.Fracify,
		Title:    cfg.Title,
		Preamble: cfg.Preamble,
		Close:    cfg.Close,
		Credits:  cfg.Credits,
	}
}
