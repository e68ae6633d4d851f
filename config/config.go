package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Service struct {
	URL string `yaml:"url" mapstructure:"url" validate:"omitempty,url"`
}
type Services struct {
	Features Service `yaml:"features" mapstructure:"features"`
}

// Audio carries the spectrogram hyperparameters. They are forwarded to the
// feature extractor and FrameShiftMs also converts frames to hours.
type Audio struct {
	SampleRate    int     `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gt=0"`
	NumMels       int     `yaml:"num_mels" mapstructure:"num_mels" validate:"gt=0"`
	NumFreq       int     `yaml:"num_freq" mapstructure:"num_freq" validate:"gt=0"`
	FrameLengthMs float64 `yaml:"frame_length_ms" mapstructure:"frame_length_ms" validate:"gt=0"`
	FrameShiftMs  float64 `yaml:"frame_shift_ms" mapstructure:"frame_shift_ms" validate:"gt=0"`
	Preemphasis   float64 `yaml:"preemphasis" mapstructure:"preemphasis" validate:"gte=0,lt=1"`
	MinLevelDB    float64 `yaml:"min_level_db" mapstructure:"min_level_db"`
	RefLevelDB    float64 `yaml:"ref_level_db" mapstructure:"ref_level_db"`
}
type Root struct {
	Pipeline struct {
		Name    string `yaml:"name" mapstructure:"name"`
		Version string `yaml:"version" mapstructure:"version"`
		LogLvl  string `yaml:"log_level" mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
		Workers int    `yaml:"workers" mapstructure:"workers" validate:"gte=0"`
	} `yaml:"pipeline" mapstructure:"pipeline"`
	Audio    Audio    `yaml:"audio" mapstructure:"audio"`
	Services Services `yaml:"services" mapstructure:"services"`
	Paths    struct {
		Data    string `yaml:"data" mapstructure:"data" validate:"required"`
		Outputs string `yaml:"outputs" mapstructure:"outputs" validate:"required"`
	} `yaml:"paths" mapstructure:"paths"`
}

// FlagKeys maps command line flag names onto config keys.
var FlagKeys = map[string]string{
	"log-level":    "pipeline.log_level",
	"workers":      "pipeline.workers",
	"in-dir":       "paths.data",
	"out-dir":      "paths.outputs",
	"features-url": "services.features.url",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "speechprep")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.workers", 0)

	v.SetDefault("audio.sample_rate", 20000)
	v.SetDefault("audio.num_mels", 80)
	v.SetDefault("audio.num_freq", 1025)
	v.SetDefault("audio.frame_length_ms", 50.0)
	v.SetDefault("audio.frame_shift_ms", 12.5)
	v.SetDefault("audio.preemphasis", 0.97)
	v.SetDefault("audio.min_level_db", -100.0)
	v.SetDefault("audio.ref_level_db", 20.0)

	v.SetDefault("services.features.url", "")

	v.SetDefault("paths.data", "./LJSpeech-1.1")
	v.SetDefault("paths.outputs", "./training")
}

// locate returns the config file to read, or "" when none is present.
// An explicit path must exist.
func locate(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return path, nil
	}
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		filepath.Join("src", "shared", "config.yaml"),
	}
	for _, p := range guess {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Load resolves the configuration from, highest first: changed flags,
// PREP_* environment variables, the YAML file and built-in defaults.
func Load(path string, flags *pflag.FlagSet) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := locate(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind %s: %w", name, err)
			}
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Root) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
}

// WorkerCount is the configured parallelism, or the host core count when unset.
func (c *Root) WorkerCount() int {
	if c.Pipeline.Workers > 0 {
		return c.Pipeline.Workers
	}
	return runtime.NumCPU()
}

// Dump writes the effective configuration as YAML.
func (c *Root) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
