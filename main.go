package main

import (
	"os"

	"github.com/mapsmcp/agentlink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
