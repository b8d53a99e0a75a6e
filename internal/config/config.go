package config

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/fpvsetup/internal/calculator"
	"codeberg.org/mutker/fpvsetup/internal/errors"
	"codeberg.org/mutker/fpvsetup/internal/format"
	"codeberg.org/mutker/fpvsetup/internal/units"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "FPVSETUP"
	DefaultLogLevel  = LogLevelWarning
	DefaultOutput    = OutputText
	DefaultRounding  = calculator.DefaultRounding

	configName = "fpvsetup"
	configType = "toml"
)

// Config holds every setting after flags, environment, config file and
// defaults are merged. Measurements stay as text so a blank value means
// the field is not known.
type Config struct {
	LogLevel LogLevel     `mapstructure:"log_level"`
	Output   OutputFormat `mapstructure:"output"`
	Rounding float64      `mapstructure:"rounding"`
	Probe    bool         `mapstructure:"probe"`

	Width            string `mapstructure:"width"`
	Height           string `mapstructure:"height"`
	Diagonal         string `mapstructure:"diagonal"`
	AspectN          string `mapstructure:"aspect_n"`
	AspectD          string `mapstructure:"aspect_d"`
	Distance         string `mapstructure:"distance"`
	AccurateDistance string `mapstructure:"accurate_distance"`
	AppPerReal       string `mapstructure:"app_per_real"`
	RealPerApp       string `mapstructure:"real_per_app"`

	WidthUnit            string `mapstructure:"width_unit"`
	HeightUnit           string `mapstructure:"height_unit"`
	DiagonalUnit         string `mapstructure:"diagonal_unit"`
	DistanceUnit         string `mapstructure:"distance_unit"`
	AccurateDistanceUnit string `mapstructure:"accurate_distance_unit"`
	AppPerRealUnit       string `mapstructure:"app_per_real_unit"`
	RealPerAppUnit       string `mapstructure:"real_per_app_unit"`
	MoveUnit             string `mapstructure:"move_unit"`
}

type setting struct {
	key   string
	value interface{}
	usage string
}

func settings() []setting {
	in := calculator.DefaultInputs()

	return []setting{
		{"log_level", string(DefaultLogLevel), "Log level (debug, info, warning, error)"},
		{"output", string(DefaultOutput), "Report format (text, yaml)"},
		{"rounding", DefaultRounding, "Tolerance for snapping to a common aspect ratio"},
		{"probe", true, "Read the monitor size from EDID when no size is given"},

		{"width", "", "Monitor width"},
		{"height", "", "Monitor height"},
		{"diagonal", "", "Monitor diagonal"},
		{"aspect_n", "", "Aspect ratio numerator"},
		{"aspect_d", "", "Aspect ratio denominator"},
		{"distance", "", "Distance from the eyes to the monitor"},
		{"accurate_distance", "", "Distance behind the monitor to render at accurate scale"},
		{"app_per_real", "", "Application units per one real unit"},
		{"real_per_app", "", "Real units per one application unit"},

		{"width_unit", in.WidthUnit.Plural(), "Unit of width"},
		{"height_unit", in.HeightUnit.Plural(), "Unit of height"},
		{"diagonal_unit", in.DiagonalUnit.Plural(), "Unit of diagonal"},
		{"distance_unit", in.DistanceUnit.Plural(), "Unit of distance"},
		{"accurate_distance_unit", in.AccurateDistanceUnit.Plural(), "Unit of accurate distance"},
		{"app_per_real_unit", in.AppPerRealUnit.Plural(), "Real unit of app_per_real"},
		{"real_per_app_unit", in.RealPerAppUnit.Plural(), "Real unit of real_per_app"},
		{"move_unit", in.MoveUnit.Plural(), "Unit of the camera move-back distance"},
	}
}

// Load merges configuration from flags in args, the environment, the
// config file and defaults, in that order of precedence.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	configFlag := fs.String("config", "", "Path to the config file")

	for _, s := range settings() {
		v.SetDefault(s.key, s.value)

		name := flagName(s.key)
		switch def := s.value.(type) {
		case bool:
			fs.Bool(name, def, s.usage)
		case float64:
			fs.Float64(name, def, s.usage)
		default:
			fs.String(name, "", s.usage)
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrParseFlags, err)
	}

	for _, s := range settings() {
		if err := v.BindPFlag(s.key, fs.Lookup(flagName(s.key))); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := o.configPath
	if *configFlag != "" {
		path = *configFlag
	}
	if err := readConfigFile(v, path, o.envPrefix); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path, envPrefix string) error {
	errFactory := errors.New()

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	for _, dir := range searchPaths() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

func searchPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, configName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", configName))
	}

	return append(paths, "/etc")
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Validate checks every setting and reports all invalid fields at once
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.LogLevel.IsValid() {
		errs = append(errs, &fieldError{"log_level", c.LogLevel, "must be one of debug, info, warning, error"})
	}
	if !c.Output.IsValid() {
		errs = append(errs, &fieldError{"output", c.Output, "must be text or yaml"})
	}
	if !(c.Rounding > 0) {
		errs = append(errs, &fieldError{"rounding", c.Rounding, "must be positive"})
	}

	for _, f := range c.measurements() {
		if _, _, err := format.ParseRestricted(f.value); err != nil {
			errs = append(errs, &fieldError{f.key, f.value, "not a number"})
		}
	}
	for _, f := range c.unitNames() {
		if _, err := units.ParseUnitName(f.value); err != nil {
			errs = append(errs, &fieldError{f.key, f.value, "unknown unit"})
		}
	}

	if len(errs) > 0 {
		return errors.New().Wrap(errors.ErrInvalidConfig, errs)
	}

	return nil
}

type keyValue struct {
	key   string
	value string
}

func (c *Config) measurements() []keyValue {
	return []keyValue{
		{"width", c.Width},
		{"height", c.Height},
		{"diagonal", c.Diagonal},
		{"aspect_n", c.AspectN},
		{"aspect_d", c.AspectD},
		{"distance", c.Distance},
		{"accurate_distance", c.AccurateDistance},
		{"app_per_real", c.AppPerReal},
		{"real_per_app", c.RealPerApp},
	}
}

func (c *Config) unitNames() []keyValue {
	return []keyValue{
		{"width_unit", c.WidthUnit},
		{"height_unit", c.HeightUnit},
		{"diagonal_unit", c.DiagonalUnit},
		{"distance_unit", c.DistanceUnit},
		{"accurate_distance_unit", c.AccurateDistanceUnit},
		{"app_per_real_unit", c.AppPerRealUnit},
		{"real_per_app_unit", c.RealPerAppUnit},
		{"move_unit", c.MoveUnit},
	}
}

// HasMonitorSize reports whether either representation of the monitor
// size was configured.
func (c *Config) HasMonitorSize() bool {
	return strings.TrimSpace(c.Width) != "" ||
		strings.TrimSpace(c.Height) != "" ||
		strings.TrimSpace(c.Diagonal) != ""
}

// Inputs converts the configured measurements into a calculator snapshot
func (c *Config) Inputs() (calculator.Inputs, error) {
	in := calculator.DefaultInputs()

	values := []struct {
		text string
		dst  *calculator.Value
	}{
		{c.Width, &in.Width},
		{c.Height, &in.Height},
		{c.Diagonal, &in.Diagonal},
		{c.AspectN, &in.AspectN},
		{c.AspectD, &in.AspectD},
		{c.Distance, &in.Distance},
		{c.AccurateDistance, &in.AccurateDistance},
		{c.AppPerReal, &in.AppPerReal},
		{c.RealPerApp, &in.RealPerApp},
	}
	for _, f := range values {
		v, ok, err := format.ParseRestricted(f.text)
		if err != nil {
			return calculator.Inputs{}, err
		}
		if ok {
			*f.dst = calculator.Known(v)
		}
	}

	selectors := []struct {
		name string
		dst  *units.Unit
	}{
		{c.WidthUnit, &in.WidthUnit},
		{c.HeightUnit, &in.HeightUnit},
		{c.DiagonalUnit, &in.DiagonalUnit},
		{c.DistanceUnit, &in.DistanceUnit},
		{c.AccurateDistanceUnit, &in.AccurateDistanceUnit},
		{c.AppPerRealUnit, &in.AppPerRealUnit},
		{c.RealPerAppUnit, &in.RealPerAppUnit},
		{c.MoveUnit, &in.MoveUnit},
	}
	for _, s := range selectors {
		u, err := units.ParseUnitName(s.name)
		if err != nil {
			return calculator.Inputs{}, err
		}
		*s.dst = u
	}

	return in, nil
}
