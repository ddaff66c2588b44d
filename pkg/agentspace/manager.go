/*
Package agentspace maintains the link between a deployed Agent Engine
resource and its Gemini Enterprise registry record. The env store is a
cache of the last known registry agent id; the registry itself is the
source of truth.
*/
package agentspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mapsmcp/agentlink/pkg/env"
)

// ErrUnlinkCancelled is returned when the operator declines the unlink
// confirmation prompt.
var ErrUnlinkCancelled = errors.New("unlink cancelled")

// ConfirmFunc asks the operator to confirm a destructive operation.
type ConfirmFunc func(prompt string) bool

/*
LinkOverrides carries the optional per-invocation replacements for the
descriptive fields of the registry record. Empty fields keep the
configured value. Overrides are applied field by field and are not
written back to the env store.
*/
type LinkOverrides struct {
	DisplayName     string
	Description     string
	ToolDescription string
}

// LinkResult reports the registry record created by a successful link.
type LinkResult struct {
	AgentName string
	AgentID   string
}

/*
Manager implements the four link lifecycle operations. It holds the
configuration snapshot loaded at construction and writes state changes
back through the env store.
*/
type Manager struct {
	store   *env.Store
	cfg     Config
	client  *Client
	confirm ConfirmFunc
}

type ManagerOption func(*Manager)

// WithConfirm installs the confirmation prompt used by Unlink.
func WithConfirm(confirm ConfirmFunc) ManagerOption {
	return func(manager *Manager) {
		manager.confirm = confirm
	}
}

// NewManager creates a link manager over the given store, configuration
// snapshot and registry client. Without WithConfirm, Unlink requires force.
func NewManager(store *env.Store, cfg Config, client *Client, opts ...ManagerOption) *Manager {
	manager := &Manager{
		store:   store,
		cfg:     cfg,
		client:  client,
		confirm: func(string) bool { return false },
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// Config returns the configuration snapshot the manager operates on.
func (manager *Manager) Config() Config {
	return manager.cfg
}

/*
Link registers the deployed agent engine with the registry and records
the assigned agent id in the env store. It refuses to overwrite an
existing link; unlink first to re-link.
*/
func (manager *Manager) Link(ctx context.Context, overrides LinkOverrides) (*LinkResult, error) {
	if err := manager.cfg.Validate(); err != nil {
		return nil, err
	}

	if manager.cfg.AgentID != "" {
		return nil, &AlreadyLinkedError{AgentID: manager.cfg.AgentID}
	}

	cfg := manager.cfg

	if overrides.DisplayName != "" {
		cfg.DisplayName = overrides.DisplayName
	}

	if overrides.Description != "" {
		cfg.Description = overrides.Description
	}

	if overrides.ToolDescription != "" {
		cfg.ToolDescription = overrides.ToolDescription
	}

	authorizations := make([]string, 0)

	if path := cfg.AuthorizationPath(); path != "" {
		authorizations = append(authorizations, path)
	}

	agent := &Agent{
		DisplayName: cfg.DisplayName,
		Description: cfg.Description,
		Definition: ADKAgentDefinition{
			ToolSettings: ToolSettings{
				ToolDescription: cfg.ToolDescription,
			},
			ProvisionedReasoningEngine: ProvisionedReasoningEngine{
				ReasoningEngine: cfg.EngineResource,
			},
			Authorizations: authorizations,
		},
	}

	log.Info("linking agent", "displayName", cfg.DisplayName, "engine", cfg.EngineResource)

	created, err := manager.client.CreateAgent(ctx, cfg.AgentsPath(), agent)

	if err != nil {
		return nil, err
	}

	agentID := trailingSegment(created.Name)

	if agentID != "" {
		if err = manager.store.Set(KeyAgentID, agentID); err != nil {
			return nil, err
		}

		manager.cfg.AgentID = agentID
	}

	log.Info("agent linked", "name", created.Name, "agentID", agentID)

	return &LinkResult{
		AgentName: created.Name,
		AgentID:   agentID,
	}, nil
}

/*
Unlink deletes the registry record and clears the recorded agent id.
Unlinking when nothing is linked succeeds without touching the
registry. Unless forced, the operator is asked to confirm first.
*/
func (manager *Manager) Unlink(ctx context.Context, force bool) error {
	agentID := manager.cfg.AgentID

	if agentID == "" {
		log.Warn("no agent linked, nothing to unlink")
		return nil
	}

	if !force && !manager.confirm(fmt.Sprintf("Are you sure you want to unlink agent %s?", agentID)) {
		return ErrUnlinkCancelled
	}

	if err := manager.client.DeleteAgent(ctx, manager.cfg.AgentsPath(), agentID); err != nil {
		return err
	}

	// Key retained, value cleared.
	if err := manager.store.Set(KeyAgentID, ""); err != nil {
		return err
	}

	manager.cfg.AgentID = ""

	log.Info("agent unlinked", "agentID", agentID)

	return nil
}

/*
Verify fetches the linked registry record and returns it. Read-only:
no local state is touched, whatever the outcome.
*/
func (manager *Manager) Verify(ctx context.Context) (*Agent, error) {
	if err := manager.cfg.Validate(); err != nil {
		return nil, err
	}

	if manager.cfg.AgentID == "" {
		return nil, &NotLinkedError{}
	}

	agent, err := manager.client.GetAgent(ctx, manager.cfg.AgentsPath(), manager.cfg.AgentID)

	if err != nil {
		return nil, err
	}

	log.Info("agent verified", "displayName", agent.DisplayName)

	return agent, nil
}

/*
ConsoleURL formats the Gemini Enterprise console URL for the configured
app. Pure formatting, no network call.
*/
func (manager *Manager) ConsoleURL() (string, error) {
	missing := make([]string, 0)

	if manager.cfg.ProjectID == "" {
		missing = append(missing, KeyProjectID)
	}

	if manager.cfg.AppID == "" {
		missing = append(missing, KeyAppID)
	}

	if len(missing) > 0 {
		return "", &ConfigurationError{Missing: missing}
	}

	return fmt.Sprintf(
		"https://console.cloud.google.com/gen-ai-studio/agentspace/apps/%s?project=%s",
		manager.cfg.AppID,
		manager.cfg.ProjectID,
	), nil
}

func trailingSegment(name string) string {
	if name == "" {
		return ""
	}

	return name[strings.LastIndex(name, "/")+1:]
}
