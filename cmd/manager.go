package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mapsmcp/agentlink/pkg/agentspace"
	"github.com/mapsmcp/agentlink/pkg/env"
	"github.com/mapsmcp/agentlink/pkg/gcp"
)

/*
newManager wires the env store, configuration snapshot, credential
provider and registry client into a link manager. Credentials resolve
lazily, so precondition failures never trigger a credential lookup.
*/
func newManager() (*agentspace.Manager, error) {
	store, err := env.Load(envFileFlag)

	if err != nil {
		return nil, err
	}

	cfg := agentspace.ConfigFromStore(store)

	client := agentspace.NewClient(
		gcp.NewADCTokenSource(),
		cfg.ProjectNumber,
		agentspace.WithBaseURL(registryBaseURL()),
	)

	return agentspace.NewManager(
		store,
		cfg,
		client,
		agentspace.WithConfirm(confirmPrompt),
	), nil
}

func registryBaseURL() string {
	if base := viper.GetString("registry.base_url"); base != "" {
		return base
	}

	return agentspace.DiscoveryEngineBase
}

func confirmPrompt(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')

	if err != nil {
		return false
	}

	line = strings.ToLower(strings.TrimSpace(line))

	return line == "y" || line == "yes"
}
