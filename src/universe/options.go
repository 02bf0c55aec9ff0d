package universe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//default options
const (
	DefTickInterval = time.Millisecond * 500
	DefEngine       = "sparse"
)

//Options represents the configurable options of the simulation
//zero Width or Height means the size is taken from the terminal
type Options struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	OneIn    int           `yaml:"oneIn"`
	Interval time.Duration `yaml:"interval"`
	Seed     int64         `yaml:"seed"`
	Engine   string        `yaml:"engine"`
	Template string        `yaml:"template"`
}

var DefaultOptions = Options{
	OneIn:    DefOneIn,
	Interval: DefTickInterval,
	Engine:   DefEngine,
}

//LoadOptions reads the YAML file at path over the base options
//fields missing in the file keep the base values
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	o := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return o, o.Validate()
}

//Validate checks the options
func (o Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("invalid dimension %v x %v", o.Width, o.Height)
	}
	if o.OneIn < 1 {
		return fmt.Errorf("invalid density 1 in %v", o.OneIn)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("invalid interval %v", o.Interval)
	}
	if _, ok := engines[o.Engine]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownEngine, o.Engine)
	}
	if o.Template != "" {
		if _, ok := templates[o.Template]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownTemplate, o.Template)
		}
	}
	return nil
}
