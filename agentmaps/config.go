package agentmaps

import (
	"errors"
	"io"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config describes one generation run.
type Config struct {
	// Source is the path of the input GeoJSON feature collection.
	Source string `yaml:"source"`

	// Bounds holds the two corner coordinates of the bounding rectangle,
	// display axis order.
	Bounds *BoundsConfig `yaml:"bounds"`

	// OverlapExclusion enables unit-versus-unit overlap testing. Disabled
	// by default.
	OverlapExclusion bool `yaml:"overlap_exclusion"`

	Output OutputConfig `yaml:"output"`
}

type BoundsConfig struct {
	SouthWest []float64 `yaml:"southwest"`
	NorthEast []float64 `yaml:"northeast"`
}

type OutputConfig struct {
	Streets string `yaml:"streets"`
	Units   string `yaml:"units"`
}

func ParseConfig(in io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if config.Source == "" {
		return nil, errors.New("No source file configured")
	}
	if config.Bounds == nil {
		return nil, errors.New("No bounds configured")
	}
	if len(config.Bounds.SouthWest) != 2 || len(config.Bounds.NorthEast) != 2 {
		return nil, errors.New("Bounds corners should be 2-element coordinates")
	}

	if config.Output.Streets == "" {
		config.Output.Streets = "streets.geojson"
	}
	if config.Output.Units == "" {
		config.Output.Units = "units.geojson"
	}

	return config, nil
}

func LoadConfig(configPath string) (*Config, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}
