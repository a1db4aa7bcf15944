// Package ideclient sends outbound notifications and calls to attached
// editors. The daemon treats editors as sinks: "show this text", "render
// these diagnostics". Notifications broadcast to every registered editor;
// request/response calls go to the first one, which is the editor that
// launched the interaction.
package ideclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_errSendToClient = "sending call/notification to editor: %w"

	// Custom methods handled by the Codewind editor extension.
	_methodAttachDebugger = "codewind/attachDebugger"
	_methodAuthenticate   = "codewind/authenticate"
)

// AttachDebuggerParams asks the editor to start a debug session against an
// exposed debug port.
type AttachDebuggerParams struct {
	ProjectID   string `json:"projectID"`
	ProjectName string `json:"projectName"`
	Host        string `json:"host"`
	DebugPort   int    `json:"debugPort"`
}

// AuthenticateParams asks the editor to run its login flow for a host.
type AuthenticateParams struct {
	Host string `json:"host"`
}

// AuthenticateResult carries the token obtained by the editor. An empty
// token means the user cancelled.
type AuthenticateResult struct {
	Token string `json:"token"`
}

// Gateway is used to send outbound notifications and calls to editors.
type Gateway interface {
	// RegisterClient registers a new editor connection with the gateway.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes an editor connection from the gateway.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// ShowMessage displays a user-visible notification in every editor.
	ShowMessage(ctx context.Context, msgType protocol.MessageType, message string) error
	// LogMessage appends to every editor's output channel. Used as the
	// container log streaming sink.
	LogMessage(ctx context.Context, message string) error
	// PublishDiagnostics renders validation results against a project's
	// files in every editor.
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error

	// AttachDebugger asks an editor to attach its debugger. Reports whether
	// the attach succeeded.
	AttachDebugger(ctx context.Context, params *AttachDebuggerParams) (bool, error)
	// RequestAuthentication asks an editor to obtain a bearer token for the
	// host. An empty token with nil error means the user cancelled.
	RequestAuthentication(ctx context.Context, host string) (string, error)
}

type gateway struct {
	clients     map[uuid.UUID]protocol.Client
	connections map[uuid.UUID]jsonrpc2.Conn
	order       []uuid.UUID
	clientsMu   sync.Mutex
	logger      *zap.Logger
}

// New returns a Gateway for sending editor notifications and calls.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.clients[id] = protocol.ClientDispatcher(*conn, g.logger)
	g.connections[id] = *conn
	g.order = append(g.order, id)

	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.clients, id)
	delete(g.connections, id)
	for i, known := range g.order {
		if known == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

func (g *gateway) ShowMessage(ctx context.Context, msgType protocol.MessageType, message string) error {
	var err error
	for _, c := range g.allClients() {
		err = multierr.Append(err, c.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    msgType,
			Message: message,
		}))
	}
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return nil
}

func (g *gateway) LogMessage(ctx context.Context, message string) error {
	var err error
	for _, c := range g.allClients() {
		err = multierr.Append(err, c.LogMessage(ctx, &protocol.LogMessageParams{
			Type:    protocol.MessageTypeLog,
			Message: message,
		}))
	}
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return nil
}

func (g *gateway) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	var err error
	for _, c := range g.allClients() {
		err = multierr.Append(err, c.PublishDiagnostics(ctx, params))
	}
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return nil
}

func (g *gateway) AttachDebugger(ctx context.Context, params *AttachDebuggerParams) (bool, error) {
	conn, err := g.firstConnection()
	if err != nil {
		return false, fmt.Errorf(_errSendToClient, err)
	}

	var attached bool
	if err := protocol.Call(ctx, conn, _methodAttachDebugger, params, &attached); err != nil {
		return false, fmt.Errorf(_errSendToClient, err)
	}
	return attached, nil
}

func (g *gateway) RequestAuthentication(ctx context.Context, host string) (string, error) {
	conn, err := g.firstConnection()
	if err != nil {
		return "", fmt.Errorf(_errSendToClient, err)
	}

	var result AuthenticateResult
	if err := protocol.Call(ctx, conn, _methodAuthenticate, &AuthenticateParams{Host: host}, &result); err != nil {
		return "", fmt.Errorf(_errSendToClient, err)
	}
	return result.Token, nil
}

func (g *gateway) allClients() []protocol.Client {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	clients := make([]protocol.Client, 0, len(g.order))
	for _, id := range g.order {
		clients = append(clients, g.clients[id])
	}
	return clients
}

func (g *gateway) firstConnection() (jsonrpc2.Conn, error) {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	if len(g.order) == 0 {
		return nil, fmt.Errorf("no editor is connected")
	}
	return g.connections[g.order[0]], nil
}
