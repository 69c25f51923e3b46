// Package config loads qbftp run configuration from YAML with environment
// overrides, validates it, and turns it into ga.Options and a logger.
//
// Precedence, lowest first: Default(), the YAML file, QBFTP_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/qbftp/ga"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Instance is the path of the instance file; may be supplied later by a flag.
	Instance string `yaml:"instance"`

	GA      GAConfig      `yaml:"ga"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GAConfig mirrors ga.Options in file form.
type GAConfig struct {
	Population      int           `yaml:"population" validate:"gte=2,even"`
	Generations     int           `yaml:"generations" validate:"gte=0"`
	MutationRate    float64       `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	Seed            int64         `yaml:"seed"`
	RepairMode      string        `yaml:"repair_mode" validate:"oneof=single-pass fixed-point"`
	RepairChoice    string        `yaml:"repair_choice" validate:"oneof=uniform greedy"`
	RepairCrossover bool          `yaml:"repair_crossover"`
	TournamentSize  int           `yaml:"tournament_size" validate:"gte=1"`
	Workers         int           `yaml:"workers" validate:"gte=1"`
	TimeLimit       time.Duration `yaml:"time_limit" validate:"gte=0"`
	Restarts        int           `yaml:"restarts" validate:"gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("even", validateEven); err != nil {
		panic(fmt.Sprintf("config: register even validator: %v", err))
	}
}

// validateEven accepts even integers; the population is recombined in pairs.
func validateEven(fl validator.FieldLevel) bool {
	return fl.Field().Int()%2 == 0
}

// Default returns the configuration matching ga.DefaultOptions.
func Default() Config {
	o := ga.DefaultOptions()

	return Config{
		GA: GAConfig{
			Population:     o.PopSize,
			Generations:    o.Generations,
			MutationRate:   o.MutationRate,
			RepairMode:     o.RepairMode.String(),
			RepairChoice:   o.RepairChoice.String(),
			TournamentSize: o.TournamentSize,
			Workers:        o.Workers,
			Restarts:       1,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path (empty ⇒ defaults only), applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default(). Unknown keys are rejected.
// The result is not validated.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// applyEnv overrides fields from QBFTP_* variables.
func applyEnv(c *Config) error {
	str := map[string]*string{
		"QBFTP_INSTANCE":      &c.Instance,
		"QBFTP_REPAIR_MODE":   &c.GA.RepairMode,
		"QBFTP_REPAIR_CHOICE": &c.GA.RepairChoice,
		"QBFTP_LOG_LEVEL":     &c.Log.Level,
		"QBFTP_LOG_FORMAT":    &c.Log.Format,
		"QBFTP_METRICS_ADDR":  &c.Metrics.Addr,
	}
	for k, p := range str {
		if v, ok := os.LookupEnv(k); ok {
			*p = v
		}
	}

	ints := map[string]*int{
		"QBFTP_POPULATION":      &c.GA.Population,
		"QBFTP_GENERATIONS":     &c.GA.Generations,
		"QBFTP_TOURNAMENT_SIZE": &c.GA.TournamentSize,
		"QBFTP_WORKERS":         &c.GA.Workers,
		"QBFTP_RESTARTS":        &c.GA.Restarts,
	}
	for k, p := range ints {
		if v, ok := os.LookupEnv(k); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, k, v)
			}
			*p = i
		}
	}

	if v, ok := os.LookupEnv("QBFTP_SEED"); ok {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: QBFTP_SEED=%q", ErrInvalidConfig, v)
		}
		c.GA.Seed = i
	}
	if v, ok := os.LookupEnv("QBFTP_MUTATION_RATE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: QBFTP_MUTATION_RATE=%q", ErrInvalidConfig, v)
		}
		c.GA.MutationRate = f
	}
	if v, ok := os.LookupEnv("QBFTP_REPAIR_CROSSOVER"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: QBFTP_REPAIR_CROSSOVER=%q", ErrInvalidConfig, v)
		}
		c.GA.RepairCrossover = b
	}
	if v, ok := os.LookupEnv("QBFTP_TIME_LIMIT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: QBFTP_TIME_LIMIT=%q", ErrInvalidConfig, v)
		}
		c.GA.TimeLimit = d
	}

	return nil
}

// ParseRepairMode maps "single-pass" and "fixed-point" to their ga values.
func ParseRepairMode(s string) (ga.RepairMode, error) {
	switch s {
	case ga.RepairSinglePass.String():
		return ga.RepairSinglePass, nil
	case ga.RepairFixedPoint.String():
		return ga.RepairFixedPoint, nil
	}

	return 0, fmt.Errorf("%w: repair mode %q", ErrInvalidConfig, s)
}

// ParseRepairChoice maps "uniform" and "greedy" to their ga values.
func ParseRepairChoice(s string) (ga.RepairChoice, error) {
	switch s {
	case ga.RepairUniform.String():
		return ga.RepairUniform, nil
	case ga.RepairGreedy.String():
		return ga.RepairGreedy, nil
	}

	return 0, fmt.Errorf("%w: repair choice %q", ErrInvalidConfig, s)
}

// Options converts the GA section. logger and m are passed through and may
// be nil.
func (c Config) Options(logger *slog.Logger, m *ga.Metrics) (ga.Options, error) {
	mode, err := ParseRepairMode(c.GA.RepairMode)
	if err != nil {
		return ga.Options{}, err
	}
	choice, err := ParseRepairChoice(c.GA.RepairChoice)
	if err != nil {
		return ga.Options{}, err
	}

	return ga.Options{
		PopSize:         c.GA.Population,
		Generations:     c.GA.Generations,
		MutationRate:    c.GA.MutationRate,
		Seed:            c.GA.Seed,
		RepairMode:      mode,
		RepairChoice:    choice,
		RepairCrossover: c.GA.RepairCrossover,
		TournamentSize:  c.GA.TournamentSize,
		Workers:         c.GA.Workers,
		TimeLimit:       c.GA.TimeLimit,
		Logger:          logger,
		Metrics:         m,
	}, nil
}

// NewLogger builds a slog logger writing to w per the Log section.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Log.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
}
