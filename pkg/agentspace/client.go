package agentspace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	fiberClient "github.com/gofiber/fiber/v3/client"

	"github.com/mapsmcp/agentlink/pkg/gcp"
)

// DiscoveryEngineBase is the fixed base URL of the Discovery Engine API.
const DiscoveryEngineBase = "https://discoveryengine.googleapis.com/v1alpha"

/*
Agent is the registry's representation of a linked agent. The payload
shape is dictated by the Discovery Engine agents endpoint.
*/
type Agent struct {
	Name        string             `json:"name,omitempty"`
	DisplayName string             `json:"displayName"`
	Description string             `json:"description"`
	Definition  ADKAgentDefinition `json:"adk_agent_definition"`
}

// ADKAgentDefinition binds the registry record to a deployed reasoning engine.
type ADKAgentDefinition struct {
	ToolSettings               ToolSettings               `json:"tool_settings"`
	ProvisionedReasoningEngine ProvisionedReasoningEngine `json:"provisioned_reasoning_engine"`
	Authorizations             []string                   `json:"authorizations"`
}

type ToolSettings struct {
	ToolDescription string `json:"tool_description"`
}

type ProvisionedReasoningEngine struct {
	ReasoningEngine string `json:"reasoning_engine"`
}

/*
Client issues authenticated requests against the Discovery Engine
agents endpoints. Every request carries a bearer token from the
injected token source and the X-Goog-User-Project header.
*/
type Client struct {
	baseURL     string
	conn        *fiberClient.Client
	tokens      gcp.TokenSource
	userProject string
}

type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		client.baseURL = baseURL
		client.conn.SetBaseURL(baseURL)
	}
}

/*
NewClient creates a Discovery Engine client. The userProject is the
numeric project set on the X-Goog-User-Project header for quota and
billing attribution.
*/
func NewClient(tokens gcp.TokenSource, userProject string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL:     DiscoveryEngineBase,
		conn:        fiberClient.New().SetBaseURL(DiscoveryEngineBase).SetTimeout(30 * time.Second),
		tokens:      tokens,
		userProject: userProject,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (client *Client) headers(ctx context.Context) (map[string]string, error) {
	token, err := client.tokens.Token(ctx)

	if err != nil {
		return nil, err
	}

	return map[string]string{
		"Authorization":       "Bearer " + token,
		"Content-Type":        "application/json",
		"X-Goog-User-Project": client.userProject,
	}, nil
}

/*
CreateAgent registers a new agent under the collection-scoped agents
path and returns the created record. Success is HTTP 200 only.
*/
func (client *Client) CreateAgent(ctx context.Context, agentsPath string, agent *Agent) (*Agent, error) {
	headers, err := client.headers(ctx)

	if err != nil {
		return nil, err
	}

	log.Debug("creating registry agent", "path", agentsPath)

	resp, err := client.conn.Post("/"+agentsPath, fiberClient.Config{
		Header: headers,
		Body:   agent,
	})

	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &TransportError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var created Agent

	if err = resp.JSON(&created); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to decode create response: %w", err)}
	}

	return &created, nil
}

/*
GetAgent fetches the registry record for the given agent id. Success
is HTTP 200 only.
*/
func (client *Client) GetAgent(ctx context.Context, agentsPath, agentID string) (*Agent, error) {
	headers, err := client.headers(ctx)

	if err != nil {
		return nil, err
	}

	log.Debug("fetching registry agent", "path", agentsPath, "agentID", agentID)

	resp, err := client.conn.Get(fmt.Sprintf("/%s/%s", agentsPath, url.PathEscape(agentID)), fiberClient.Config{
		Header: headers,
	})

	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &TransportError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var agent Agent

	if err = resp.JSON(&agent); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to decode agent response: %w", err)}
	}

	return &agent, nil
}

/*
DeleteAgent removes the registry record for the given agent id.
Success is HTTP 200 or 204.
*/
func (client *Client) DeleteAgent(ctx context.Context, agentsPath, agentID string) error {
	headers, err := client.headers(ctx)

	if err != nil {
		return err
	}

	log.Debug("deleting registry agent", "path", agentsPath, "agentID", agentID)

	resp, err := client.conn.Delete(fmt.Sprintf("/%s/%s", agentsPath, url.PathEscape(agentID)), fiberClient.Config{
		Header: headers,
	})

	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return &TransportError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	return nil
}
