package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// ConnectionInfo describes one remote server a session can be established
// with. URL is normalized and serves as the de-duplication key: at most one
// live session may exist per URL.
type ConnectionInfo struct {
	URL             string
	Host            string
	Version         string
	WorkspacePath   string
	SocketNamespace string
	User            string
}

// NormalizeURL canonicalizes a candidate server URL so that equivalent
// spellings collide: scheme and host are lower-cased, default paths and
// trailing slashes are dropped.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid server URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("server URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server URL %q has no host", raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// TreeItemKind discriminates the variants of a TreeItem.
type TreeItemKind string

// TreeItem variants.
const (
	TreeItemConnection TreeItemKind = "connection"
	TreeItemProject    TreeItemKind = "project"
)

// TreeItem is the tagged union handed to UI collaborators rendering the
// connections tree. Exactly one of Connection or Project is set, matching
// Kind.
type TreeItem struct {
	Kind       TreeItemKind
	Connection *ConnectionInfo
	Project    *Project
}

// Label returns the display text for the item.
func (t TreeItem) Label() string {
	switch t.Kind {
	case TreeItemConnection:
		return t.Connection.URL
	case TreeItemProject:
		return fmt.Sprintf("%s [%s]", t.Project.Name, t.Project.State().AppState)
	default:
		return ""
	}
}
