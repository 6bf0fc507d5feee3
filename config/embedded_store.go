package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"naraintegration/models"
	"naraintegration/pkg/logger"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/types"
)

// EmbeddedStore is an in-process MySQL-compatible server holding the integration store table.
// Data lives for the lifetime of the process.
type EmbeddedStore struct {
	Server *server.Server
	Port   int
	cancel context.CancelFunc
}

// Close shuts down the embedded server.
func (e *EmbeddedStore) Close() error {
	if e.cancel != nil {
		e.cancel()
	}
	if err := e.Server.Close(); err != nil {
		return fmt.Errorf("failed to close embedded store: %w", err)
	}
	logger.Infof("Closed embedded store on port %d", e.Port)
	return nil
}

// StartEmbeddedStore serves an in-memory database named Cfg.DBName on a free localhost
// port and connects DB to it.
func StartEmbeddedStore(ctx context.Context) (*EmbeddedStore, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	storeDB := memory.NewDatabase(Cfg.DBName)
	provider := memory.NewDBProvider(storeDB)
	engine := sqle.NewDefault(provider)

	createStoreTable(storeDB)

	s, err := server.NewServer(server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedded server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	go func() {
		if err := s.Start(); err != nil {
			logger.Errorf("Embedded store server error: %v", err)
		}
	}()
	go func() {
		<-serverCtx.Done()
		s.Close()
	}()

	if err := waitForPort(ctx, port, 5*time.Second); err != nil {
		cancel()
		return nil, err
	}
	logger.Infof("Started embedded store on port %d", port)

	db, err := openMySQL("root", "", "localhost", port, Cfg.DBName)
	if err != nil {
		cancel()
		return nil, err
	}
	DB = db

	return &EmbeddedStore{Server: s, Port: port, cancel: cancel}, nil
}

func createStoreTable(db *memory.Database) {
	table := models.StoreEntry{}.TableName()
	schema := sql.NewPrimaryKeySchema(sql.Schema{
		{Name: "collection_key", Type: types.Text, Source: table, Nullable: false, PrimaryKey: true},
		{Name: "value", Type: types.LongText, Source: table, Nullable: true},
		{Name: "schema_version", Type: types.Int32, Source: table, Nullable: false},
		{Name: "updated_at", Type: types.Datetime, Source: table, Nullable: true},
	})
	db.AddTable(table, memory.NewTable(db, table, schema, db.GetForeignKeyCollection()))
}

// waitForPort polls until the server accepts connections or the timeout expires.
func waitForPort(ctx context.Context, port int, timeout time.Duration) error {
	readyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	addr := fmt.Sprintf("localhost:%d", port)
	for {
		select {
		case <-readyCtx.Done():
			return fmt.Errorf("embedded store did not start within %v: %w", timeout, readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				return nil
			}
		}
	}
}

func getFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
