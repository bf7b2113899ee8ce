package cmd

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/enarhi/AgentMaps/agentmaps"
	geojson "github.com/paulmach/go.geojson"
)

type CmdIntersections struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("intersections",
		"Show the street graph",
		"Compute street intersections only and print a per-street summary",
		&CmdIntersections{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdIntersections) Usage() string {
	return "config.yaml"
}

func (cmd CmdIntersections) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Config file not specified, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig(args[0])
	if err != nil {
		return err
	}

	data, err := ioutil.ReadFile(config.Source)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return err
	}

	streets := agentmaps.StreetsFromFeatures(fc)
	err = agentmaps.BuildStreetGraph(streets)
	if err != nil {
		return err
	}

	for _, s := range streets {
		for _, other := range s.IntersectionIDs() {
			log.Printf("%s crosses %s at %d point(s)", s.ID, other, len(s.Intersections[other]))
		}
	}

	return nil
}
