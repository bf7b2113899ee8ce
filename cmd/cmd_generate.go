package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/enarhi/AgentMaps/agentmaps"
	geojson "github.com/paulmach/go.geojson"
	"golang.org/x/sync/errgroup"
)

type CmdGenerate struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("generate",
		"Generate a unit layout",
		"Generate building unit footprints along the streets of a map extract",
		&CmdGenerate{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdGenerate) Usage() string {
	return "config.yaml"
}

func (cmd CmdGenerate) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Config file not specified, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig(args[0])
	if err != nil {
		return err
	}

	fc, err := cmd.readSource(config.Source)
	if err != nil {
		return fmt.Errorf("Failed to read %s: %s", config.Source, err.Error())
	}

	streets := agentmaps.StreetsFromFeatures(fc)
	log.Printf("Loaded %d streets", len(streets))

	layout, err := agentmaps.NewLayoutPipeline(streets).
		Bounds(agentmaps.NewBounds(config.Bounds.SouthWest, config.Bounds.NorthEast)).
		OverlapExclusion(config.OverlapExclusion).
		Run()
	if err != nil {
		return fmt.Errorf("Failed to generate: %s", err.Error())
	}
	log.Printf("Generated %d units", layout.Units.Len())

	var g errgroup.Group
	g.Go(func() error {
		return writeFeatures(config.Output.Streets, layout.StreetFeatures())
	})
	g.Go(func() error {
		return writeFeatures(config.Output.Units, layout.UnitFeatures())
	})
	return g.Wait()
}

func (cmd CmdGenerate) readSource(filename string) (*geojson.FeatureCollection, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if !cmd.global.Quiet {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		bar := pb.New(int(stat.Size())).SetUnits(pb.U_BYTES)
		bar.Start()
		defer bar.Finish()
		in = bar.NewProxyReader(f)
	}

	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(data)
}

func writeFeatures(filename string, fc *geojson.FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, data, 0644)
}
