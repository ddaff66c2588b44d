package agentspace

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mapsmcp/agentlink/pkg/env"
)

// Configuration keys recognized in the env store.
const (
	KeyProjectID      = "GOOGLE_CLOUD_PROJECT"
	KeyProjectNumber  = "GCP_PROJECT_NUMBER"
	KeyLocation       = "GOOGLE_CLOUD_LOCATION"
	KeyAppID          = "AGENTSPACE_APP_ID"
	KeyCollection     = "AGENTSPACE_COLLECTION"
	KeyAssistant      = "AGENTSPACE_ASSISTANT"
	KeyEngineResource = "AGENT_ENGINE_RESOURCE_NAME"
	KeyAgentID        = "AGENTSPACE_AGENT_ID"
	KeyDisplayName    = "AGENT_DISPLAY_NAME"
	KeyDescription    = "AGENT_DESCRIPTION"
	KeyToolDesc       = "AGENT_TOOL_DESCRIPTION"
	KeyOAuthAuthID    = "OAUTH_AUTH_ID"
)

// Compiled-in fallbacks, used when neither the env store nor the viper
// config file provides a value.
const (
	defaultCollection  = "default_collection"
	defaultAssistant   = "default_assistant"
	defaultDisplayName = "Google Maps MCP Agent"
	defaultDescription = "AI-powered assistant for Google Maps location search, directions, and geocoding"
	defaultToolDesc    = "Google Maps tools for location search, directions, and address lookup"
)

/*
Config is the explicit enumeration of every configuration option the
link manager recognizes, with defaults already applied. It is built
once from the env store and never read back from global state.
*/
type Config struct {
	ProjectID       string
	ProjectNumber   string
	Location        string
	AppID           string
	Collection      string
	Assistant       string
	EngineResource  string
	AgentID         string
	DisplayName     string
	Description     string
	ToolDescription string
	OAuthAuthID     string
}

/*
ConfigFromStore builds a Config from the merged env store and process
environment snapshot. Descriptive defaults come from the viper config
file when present, then from compiled-in strings.
*/
func ConfigFromStore(store *env.Store) Config {
	v := viper.GetViper()
	vars := store.Snapshot()

	pick := func(key, viperKey, fallback string) string {
		if value := vars[key]; value != "" {
			return value
		}

		if viperKey != "" {
			if value := v.GetString(viperKey); value != "" {
				return value
			}
		}

		return fallback
	}

	return Config{
		ProjectID:       vars[KeyProjectID],
		ProjectNumber:   vars[KeyProjectNumber],
		Location:        vars[KeyLocation],
		AppID:           vars[KeyAppID],
		Collection:      pick(KeyCollection, "", defaultCollection),
		Assistant:       pick(KeyAssistant, "", defaultAssistant),
		EngineResource:  vars[KeyEngineResource],
		AgentID:         vars[KeyAgentID],
		DisplayName:     pick(KeyDisplayName, "agent.display_name", defaultDisplayName),
		Description:     pick(KeyDescription, "agent.description", defaultDescription),
		ToolDescription: pick(KeyToolDesc, "agent.tool_description", defaultToolDesc),
		OAuthAuthID:     vars[KeyOAuthAuthID],
	}
}

/*
Validate checks the keys every registry operation requires and returns
a ConfigurationError naming exactly the ones that are missing or empty.
*/
func (cfg Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{KeyProjectID, cfg.ProjectID},
		{KeyProjectNumber, cfg.ProjectNumber},
		{KeyAppID, cfg.AppID},
		{KeyEngineResource, cfg.EngineResource},
		{KeyLocation, cfg.Location},
	}

	missing := make([]string, 0)

	for _, entry := range required {
		if entry.value == "" {
			missing = append(missing, entry.key)
		}
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}

	return nil
}

/*
AgentsPath returns the collection-scoped agents path under the
Discovery Engine API base, without an agent id suffix.
*/
func (cfg Config) AgentsPath() string {
	return fmt.Sprintf(
		"projects/%s/locations/global/collections/%s/engines/%s/assistants/%s/agents",
		cfg.ProjectNumber,
		cfg.Collection,
		cfg.AppID,
		cfg.Assistant,
	)
}

/*
AuthorizationPath returns the OAuth authorization resource path when
OAUTH_AUTH_ID is configured, or the empty string.
*/
func (cfg Config) AuthorizationPath() string {
	if cfg.OAuthAuthID == "" {
		return ""
	}

	return fmt.Sprintf(
		"projects/%s/locations/global/authorizations/%s",
		cfg.ProjectNumber,
		cfg.OAuthAuthID,
	)
}
