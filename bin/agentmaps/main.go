package main

import (
	"log"

	"github.com/enarhi/AgentMaps/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
