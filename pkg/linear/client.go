// Package linear talks to the Linear issue tracker over its GraphQL API,
// authenticating with an API key resolved from the key chain.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/networking"
	"github.com/gofer-sh/gofer/pkg/versions"
)

// DefaultEndpoint is the production GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

// Client issues GraphQL queries and mutations against Linear.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the production endpoint. The API key is
// sent verbatim in the Authorization header, the way Linear expects it.
// caBundle optionally points at a PEM file with additional trust roots.
func NewClient(apiKey, caBundle string) (*Client, error) {
	builder := networking.NewHttpClientBuilder().
		WithAuthHeader(apiKey).
		WithUserAgent(versions.UserAgent())
	if caBundle != "" {
		builder = builder.WithCABundle(caBundle)
	}

	httpClient, err := builder.Build()
	if err != nil {
		return nil, errors.NewUnexpectedError(fmt.Sprintf("Failed to build HTTP client: %v", err), err)
	}
	return &Client{endpoint: DefaultEndpoint, http: httpClient}, nil
}

// NewClientWithHTTP creates a client against a custom endpoint using a
// caller-supplied HTTP client, which is expected to carry its own
// authentication. This function is primarily intended for testing purposes.
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, http: httpClient}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// query posts one GraphQL document and decodes the data object into out.
// Non-200 responses and GraphQL-level errors both surface as vendor errors.
func (c *Client) query(ctx context.Context, document string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return errors.NewUnexpectedError(err.Error(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.NewUnexpectedError(err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewUnexpectedError(fmt.Sprintf("Failed to reach the Linear API: %v", err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUnexpectedError(err.Error(), err)
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("Linear API returned %d", resp.StatusCode)
		if preview := strings.TrimSpace(string(body)); preview != "" {
			message = fmt.Sprintf("%s: %s", message, preview)
		}
		httpErr := networking.NewHTTPError(resp.StatusCode, c.endpoint, http.StatusText(resp.StatusCode))
		return errors.NewVendorAPIError(message, httpErr)
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return errors.NewUnexpectedError(fmt.Sprintf("Failed to decode Linear response: %v", err), err)
	}
	if len(decoded.Errors) > 0 {
		return errors.NewVendorAPIError(joinGraphQLErrors(decoded.Errors), nil)
	}
	if out != nil {
		if err := json.Unmarshal(decoded.Data, out); err != nil {
			return errors.NewUnexpectedError(fmt.Sprintf("Failed to decode Linear response: %v", err), err)
		}
	}
	return nil
}

func joinGraphQLErrors(errs []graphQLError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}
