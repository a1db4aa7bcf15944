// Package mapper converts between wire/storage models and entities.
package mapper

import (
	"net/url"
	"strconv"

	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/model"
)

// DescriptorToProject materializes a Project from a project-list element.
// notify is the owning session's change signal and may be nil in tests.
func DescriptorToProject(d *model.ProjectDescriptor, notify func()) *entity.Project {
	p := entity.NewProject(d.ProjectID, d.Name, notify)
	p.Type = entity.ProjectTypeOf(d.BuildType)
	p.Language = d.Language
	p.LocalPath = d.LocOnDisk
	p.ContextRoot = d.ContextRoot
	p.Update(DescriptorToSnapshot(d))
	return p
}

// DescriptorToSnapshot extracts the status fields of a project-list element.
func DescriptorToSnapshot(d *model.ProjectDescriptor) *entity.StatusSnapshot {
	ports, _ := PortsToEntity(d.Ports)
	return &entity.StatusSnapshot{
		AppStatus:   d.AppStatus,
		BuildStatus: d.BuildStatus,
		BuildDetail: d.DetailedBuildStatus,
		State:       d.State,
		StartMode:   d.StartMode,
		Ports:       ports,
		ContainerID: d.ContainerID,
	}
}

// UpdateToSnapshot converts a status event payload. The second return lists
// raw port values that failed to parse; the caller logs and drops them.
func UpdateToSnapshot(u *model.ProjectUpdate) (*entity.StatusSnapshot, []string) {
	ports, bad := PortsToEntity(u.Ports)
	return &entity.StatusSnapshot{
		AppStatus:   u.AppStatus,
		BuildStatus: u.BuildStatus,
		BuildDetail: u.DetailedBuildStatus,
		State:       u.State,
		StartMode:   u.StartMode,
		Ports:       ports,
		ContainerID: u.ContainerID,
	}, bad
}

// RestartToSnapshot converts a successful restart result into a status
// snapshot. The application is starting again in the requested mode.
func RestartToSnapshot(r *model.RestartResult) (*entity.StatusSnapshot, []string) {
	ports, bad := PortsToEntity(r.Ports)
	return &entity.StatusSnapshot{
		AppStatus: "starting",
		StartMode: r.StartMode,
		Ports:     ports,
	}, bad
}

// PortsToEntity parses the string port map from the wire. Absent fields map
// to 0; unparsable values are dropped and returned for logging.
func PortsToEntity(pm *model.PortMap) (*entity.Ports, []string) {
	if pm == nil {
		return nil, nil
	}
	var bad []string
	parse := func(raw string) int {
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || !entity.GoodPort(n) {
			bad = append(bad, raw)
			return 0
		}
		return n
	}
	ports := &entity.Ports{
		AppPort:   parse(pm.ExposedPort),
		DebugPort: parse(pm.ExposedDebugPort),
	}
	return ports, bad
}

// DescriptorToInfo maps a persisted connection descriptor to its entity.
func DescriptorToInfo(d *model.ConnectionDescriptor) (*entity.ConnectionInfo, error) {
	normalized, err := entity.NormalizeURL(d.URL)
	if err != nil {
		return nil, err
	}
	host := ""
	if u, err := url.Parse(normalized); err == nil {
		host = u.Hostname()
	}
	return &entity.ConnectionInfo{
		URL:             normalized,
		Host:            host,
		Version:         d.Version,
		WorkspacePath:   d.WorkspacePath,
		SocketNamespace: d.SocketNamespace,
		User:            d.User,
	}, nil
}

// InfoToDescriptor maps a connection entity to its persisted form.
func InfoToDescriptor(info *entity.ConnectionInfo) *model.ConnectionDescriptor {
	return &model.ConnectionDescriptor{
		URL:             info.URL,
		Version:         info.Version,
		WorkspacePath:   info.WorkspacePath,
		SocketNamespace: info.SocketNamespace,
		User:            info.User,
	}
}

// EnvironmentToInfo builds a connection entity from a validated environment
// response.
func EnvironmentToInfo(normalizedURL string, env *model.Environment) *entity.ConnectionInfo {
	host := ""
	if u, err := url.Parse(normalizedURL); err == nil {
		host = u.Hostname()
	}
	return &entity.ConnectionInfo{
		URL:             normalizedURL,
		Host:            host,
		Version:         env.MicroclimateVersion,
		WorkspacePath:   env.WorkspaceLocation,
		SocketNamespace: env.SocketNamespace,
		User:            env.UserString,
	}
}
