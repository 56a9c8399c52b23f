package dotmatrix

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds everything needed for one conversion. Input and Output only
// come from the command line; the rest may also be read from a YAML file:
//
//	radius: 3
//	threshold: 200
//	fit: 120x80
//	gamma: 1.2
//	invert: true
type Config struct {
	Input  string `yaml:"-"`
	Output string `yaml:"-"`

	Radius    int    `yaml:"radius"`
	Threshold int    `yaml:"threshold"`
	Fit       string `yaml:"fit"`

	Adjustments `yaml:",inline"`
	AutoOrient  bool   `yaml:"auto_orient"`
	Preview     string `yaml:"preview"`
}

func DefaultConfig() Config {
	return Config{
		Radius:      DefaultRadius,
		Threshold:   DefaultThreshold,
		Adjustments: Adjustments{SigmoidMidpoint: 0.5},
	}
}

// LoadConfig reads the YAML file at path over cfg. Keys missing from the file
// keep their current values; unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Validate checks cfg before any image is opened.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("missing input path")
	}
	if c.Output == "" {
		return errors.New("missing output path")
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, c.Radius)
	}
	if c.Fit != "" {
		if _, err := ParseFit(c.Fit); err != nil {
			return err
		}
	}
	return nil
}

// Filters returns the preprocessing chain described by c: resize first, then
// tone adjustments.
func (c Config) Filters() (Filters, error) {
	var fs Filters
	if c.Fit != "" {
		fit, err := ParseFit(c.Fit)
		if err != nil {
			return nil, err
		}
		fs = append(fs, fit)
	}
	if !c.Adjustments.IsZero() {
		fs = append(fs, c.Adjustments)
	}
	return fs, nil
}
