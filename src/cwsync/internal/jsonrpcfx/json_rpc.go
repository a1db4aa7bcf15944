package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/codewind/cwsync/src/cwsync/internal/infofile"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyAddress = "jsonrpc.address"
	_outputKey        = "cwsync-address"
)

// Module is an fx module to handle JSON-RPC requests.
var Module = fx.Provide(New)

// JSONRPCModule represents a module to manage JSON-RPC requests from editors.
type JSONRPCModule interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router serves as the interface through which handling of requests will be implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager will manage each active editor connection and its corresponding Router throughout the lifecycle of a connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

type module struct {
	Address string `json:"address"`

	connectionMgr ConnectionManager
	ln            *net.TCPListener
	logger        *zap.SugaredLogger
	infoFile      infofile.InfoFile
}

// Params define values to be used by the JSON-RPC module.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	InfoFile  infofile.InfoFile
}

// New creates a new server to handle JSON-RPC requests on the configured address.
func New(p Params) (JSONRPCModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := module{
		logger:   p.Logger,
		infoFile: p.InfoFile,
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.OnStop,
	})

	return &m, nil
}

// OnStart will initialize a JSON-RPC handler and then begin handling incoming connections.
func (m *module) OnStart(ctx context.Context) error {
	if err := m.setup(); err != nil {
		return err
	}

	go m.start()
	return nil
}

// OnStop closes the listener so no further editor connections are accepted.
func (m *module) OnStop(ctx context.Context) error {
	if m.ln == nil {
		return nil
	}
	return m.ln.Close()
}

// ServeStream is called when a new editor connects. Requests received via the connection will be routed to the handler, and answered via the connection's replier.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	if m.connectionMgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	// Start handling the connection.
	handler, err := m.connectionMgr.NewConnection(ctx, &conn)
	if err != nil {
		return err
	}
	m.logger.Infow("editor connected", zap.Stringer("uuid", handler.UUID()))
	conn.Go(ctx, handler.HandleReq)

	// Block indefinitely until connection closed.
	<-conn.Done()

	// Cleanup after connection.
	m.connectionMgr.RemoveConnection(ctx, handler.UUID())
	m.logger.Infow("editor disconnected", zap.Stringer("uuid", handler.UUID()))

	return conn.Err()
}

// RegisterConnectionManager sets the connection manager, which keeps track of current active connections and provides a Router implementation.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

// setup should be called after creation of a new handler to set initial values.
func (m *module) setup() error {
	if m.Address == "" {
		return errors.New("setup called before address is set")
	}

	addr, err := net.ResolveTCPAddr("tcp", m.Address)
	if err != nil {
		return err
	}

	m.ln, err = net.ListenTCP("tcp", addr)
	return err
}

// start will begin serving connections, and panic on error.
func (m *module) start() {
	if err := m.infoFile.UpdateField(_outputKey, m.ln.Addr().String()); err != nil {
		panic(err)
	}

	m.logger.Infow("started JSON-RPC inbound", zap.String("address", m.ln.Addr().String()))
	if err := jsonrpc2.Serve(context.Background(), m.ln, m, 0); err != nil && !errors.Is(err, net.ErrClosed) {
		panic(err)
	}
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyAddress)
	if err := val.Populate(&m.Address); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyAddress, err)
	}

	if m.Address == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyAddress)
	}

	return nil
}
