package cmd

import (
	"os"

	"github.com/enarhi/AgentMaps/agentmaps"
	"github.com/jessevdk/go-flags"
)

type GlobalOptions struct {
	Quiet bool `short:"q" long:"quiet" description:"Suppress progress output"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig(path string) (*agentmaps.Config, error) {
	return agentmaps.LoadConfig(path)
}
