// Package connect validates a candidate server URL end to end and, on
// success, hands the connection to the registry. Every rejection path
// produces a single user-presentable error.
package connect

import (
	"context"
	stderr "errors"
	"fmt"

	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/controller/registry"
	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/gateway/auth"
	pfeclient "github.com/codewind/cwsync/src/cwsync/gateway/pfe-client"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"github.com/codewind/cwsync/src/cwsync/mapper"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyMinVersion = "codewind.minVersion"
	_defaultMinVersion   = "18.12"
)

// Controller validates and adds new connections.
type Controller interface {
	// TryAddConnection probes rawURL, authenticates if the server demands
	// it, validates version and workspace, and registers the connection.
	// On failure the returned error is presentable to the user as-is.
	TryAddConnection(ctx context.Context, rawURL string) (connection.Session, error)
}

// Params are inbound parameters to build the connect controller.
type Params struct {
	fx.In

	Registry registry.Controller
	PFE      pfeclient.Gateway
	Auth     auth.Gateway
	Syncer   Syncer
	FS       fs.CwsyncFS
	Config   config.Provider
	Logger   *zap.SugaredLogger
}

type controller struct {
	registry   registry.Controller
	pfe        pfeclient.Gateway
	auth       auth.Gateway
	syncer     Syncer
	fs         fs.CwsyncFS
	logger     *zap.SugaredLogger
	minVersion string
}

// New creates a connect controller.
func New(p Params) (Controller, error) {
	minVersion := _defaultMinVersion
	var configured string
	if err := p.Config.Get(_configKeyMinVersion).Populate(&configured); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyMinVersion, err)
	}
	if configured != "" {
		minVersion = configured
	}

	return &controller{
		registry:   p.Registry,
		pfe:        p.PFE,
		auth:       p.Auth,
		syncer:     p.Syncer,
		fs:         p.FS,
		logger:     p.Logger,
		minVersion: minVersion,
	}, nil
}

func (c *controller) TryAddConnection(ctx context.Context, rawURL string) (connection.Session, error) {
	url, err := entity.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if _, ok := c.registry.GetConnection(url); ok {
		return nil, errors.ErrDuplicateConnection
	}

	env, err := c.probe(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.validateEnvironment(url, env); err != nil {
		return nil, err
	}

	info := mapper.EnvironmentToInfo(url, env)
	if err := c.resolveWorkspace(ctx, info, env); err != nil {
		return nil, err
	}

	s, err := c.registry.AddConnection(ctx, info)
	if err != nil {
		return nil, err
	}
	c.logger.Infof("added connection to %s (version %s, workspace %s)",
		info.URL, info.Version, info.WorkspacePath)
	return s, nil
}

// probe contacts the server, running the login flow and retrying once if it
// demands authentication.
func (c *controller) probe(ctx context.Context, url string) (*model.Environment, error) {
	env, err := c.pfe.Probe(ctx, url)
	if err == nil {
		return env, nil
	}

	var authErr *errors.AuthRequiredError
	if stderr.As(err, &authErr) {
		if authenticateErr := c.auth.Authenticate(ctx, authErr.Host); authenticateErr != nil {
			if stderr.Is(authenticateErr, errors.ErrAuthCancelled) {
				return nil, authenticateErr
			}
			return nil, fmt.Errorf("logging in to %s failed: %v", authErr.Host, authenticateErr)
		}
		env, err = c.pfe.Probe(ctx, url)
		if err == nil {
			return env, nil
		}
		if stderr.As(err, &authErr) {
			return nil, fmt.Errorf("the server at %s rejected the obtained credentials", url)
		}
	}

	var unreachable *errors.UnreachableError
	if stderr.As(err, &unreachable) {
		return nil, fmt.Errorf("could not connect to the server at %s; check that it is running and the URL is correct", url)
	}
	var status *errors.HTTPStatusError
	if stderr.As(err, &status) {
		return nil, fmt.Errorf("the server at %s responded with an error (HTTP %d); it may not be a Codewind server", url, status.Status)
	}
	return nil, fmt.Errorf("contacting the server at %s failed: %v", url, err)
}

func (c *controller) validateEnvironment(url string, env *model.Environment) error {
	if env.MicroclimateVersion == "" {
		return fmt.Errorf("the server at %s did not report a version; it may not be a Codewind server", url)
	}
	if env.WorkspaceLocation == "" {
		return fmt.Errorf("the server at %s did not report a workspace location", url)
	}
	ok, err := VersionSatisfies(env.MicroclimateVersion, c.minVersion)
	if err != nil {
		return fmt.Errorf("the server at %s reported an unrecognized version %q", url, env.MicroclimateVersion)
	}
	if !ok {
		return &errors.VersionError{Found: env.MicroclimateVersion, Minimum: c.minVersion}
	}
	return nil
}

// resolveWorkspace makes info.WorkspacePath usable on this machine: a local
// workspace must exist as a directory; a remote one is mirrored by the sync
// collaborator.
func (c *controller) resolveWorkspace(ctx context.Context, info *entity.ConnectionInfo, env *model.Environment) error {
	if env.RunningOnICP {
		local, err := c.syncer.EnsureWorkspace(ctx, info.Host, env.WorkspaceLocation)
		if err != nil {
			return fmt.Errorf("preparing a local workspace for %s failed: %v", info.URL, err)
		}
		info.WorkspacePath = local
		return nil
	}

	exists, err := c.fs.DirExists(info.WorkspacePath)
	if err != nil {
		return fmt.Errorf("checking workspace %s: %v", info.WorkspacePath, err)
	}
	if !exists {
		return fmt.Errorf("the workspace %s reported by %s does not exist on this machine", info.WorkspacePath, info.URL)
	}
	return nil
}
