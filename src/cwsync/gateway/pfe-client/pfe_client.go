// Package pfeclient is the REST gateway to a Codewind/Microclimate server
// ("PFE"). One gateway serves every connection; callers pass the base URL of
// the server they are addressing.
package pfeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/codewind/cwsync/src/cwsync/gateway/auth"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/model"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyProbeTimeout   = "codewind.probeTimeoutMs"
	_configKeyRequestTimeout = "codewind.requestTimeoutMs"

	// Probe requests answer "is anything there" and stay short; action
	// requests are bounded to avoid hangs, not to be snappy.
	_defaultProbeTimeout   = 2500 * time.Millisecond
	_defaultRequestTimeout = 30 * time.Second

	_pathEnvironment = "/api/v1/environment"
	_pathProjects    = "/api/v1/projects"
)

// Gateway issues REST requests against a server's API.
type Gateway interface {
	// Probe fetches the environment with a short timeout, classifying
	// failures into unreachable, HTTP error and authentication-required.
	Probe(ctx context.Context, baseURL string) (*model.Environment, error)
	// GetProjects fetches the full project list.
	GetProjects(ctx context.Context, baseURL string) ([]model.ProjectDescriptor, error)
	// RequestRestart asks the server to restart a project in the given
	// start mode. The outcome arrives later as a projectRestartResult event.
	RequestRestart(ctx context.Context, baseURL, projectID, startMode string) error
	// RequestBuild queues a build for a project.
	RequestBuild(ctx context.Context, baseURL, projectID string) error
}

type gateway struct {
	client         *http.Client
	auth           auth.Gateway
	logger         *zap.SugaredLogger
	stats          tally.Scope
	probeTimeout   time.Duration
	requestTimeout time.Duration
}

// Params define values used by the PFE gateway.
type Params struct {
	fx.In

	Config config.Provider
	Auth   auth.Gateway
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

// New returns a Gateway for the Codewind REST API.
func New(p Params) (Gateway, error) {
	g := &gateway{
		client:         &http.Client{},
		auth:           p.Auth,
		logger:         p.Logger,
		stats:          p.Stats.SubScope("pfe"),
		probeTimeout:   _defaultProbeTimeout,
		requestTimeout: _defaultRequestTimeout,
	}

	var probeMs, requestMs int
	if err := p.Config.Get(_configKeyProbeTimeout).Populate(&probeMs); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyProbeTimeout, err)
	}
	if err := p.Config.Get(_configKeyRequestTimeout).Populate(&requestMs); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyRequestTimeout, err)
	}
	if probeMs > 0 {
		g.probeTimeout = time.Duration(probeMs) * time.Millisecond
	}
	if requestMs > 0 {
		g.requestTimeout = time.Duration(requestMs) * time.Millisecond
	}

	return g, nil
}

func (g *gateway) Probe(ctx context.Context, baseURL string) (*model.Environment, error) {
	var env model.Environment
	if err := g.do(ctx, http.MethodGet, baseURL, _pathEnvironment, nil, g.probeTimeout, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (g *gateway) GetProjects(ctx context.Context, baseURL string) ([]model.ProjectDescriptor, error) {
	var projects []model.ProjectDescriptor
	if err := g.do(ctx, http.MethodGet, baseURL, _pathProjects, nil, g.requestTimeout, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (g *gateway) RequestRestart(ctx context.Context, baseURL, projectID, startMode string) error {
	path := fmt.Sprintf("%s/%s/restart", _pathProjects, projectID)
	body := map[string]string{"startMode": startMode}
	return g.do(ctx, http.MethodPost, baseURL, path, body, g.requestTimeout, nil)
}

func (g *gateway) RequestBuild(ctx context.Context, baseURL, projectID string) error {
	path := fmt.Sprintf("%s/%s/build", _pathProjects, projectID)
	body := map[string]string{"action": "build"}
	return g.do(ctx, http.MethodPost, baseURL, path, body, g.requestTimeout, nil)
}

// do issues one bounded request and decodes a JSON response into out, which
// may be nil for fire-and-forget actions.
func (g *gateway) do(ctx context.Context, method, baseURL, path string, body interface{}, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := baseURL + path
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request to %s: %w", target, err)
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("building request to %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	host := hostOf(baseURL)
	if token, ok := g.auth.BearerToken(host); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.stats.Counter("requests_unreachable").Inc(1)
		return &errors.UnreachableError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		g.stats.Counter("requests_unauthorized").Inc(1)
		return &errors.AuthRequiredError{Host: host}
	case resp.StatusCode >= 300:
		g.stats.Counter("requests_failed").Inc(1)
		return &errors.HTTPStatusError{URL: target, Status: resp.StatusCode}
	}
	g.stats.Counter("requests_ok").Inc(1)

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", target, err)
		}
	}
	return nil
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	return u.Hostname()
}
