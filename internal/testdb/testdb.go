// Package testdb opens isolated in-memory databases for tests and provides
// a query-counting gorm logger for the batch-loading assertions.
package testdb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/colabora-dev/colabora/db"
)

// Open returns a migrated in-memory SQLite handle. The pool is capped at a
// single connection inside db.Connect, so ":memory:" stays one database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Connect(db.Config{SQLitePath: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

// QueryCounter implements gorm's logger interface and counts every traced
// statement. Attach with Session(&gorm.Session{Logger: counter}).
type QueryCounter struct {
	mu sync.Mutex
	n  int
}

func (c *QueryCounter) LogMode(logger.LogLevel) logger.Interface { return c }

func (c *QueryCounter) Info(context.Context, string, ...interface{})  {}
func (c *QueryCounter) Warn(context.Context, string, ...interface{})  {}
func (c *QueryCounter) Error(context.Context, string, ...interface{}) {}

func (c *QueryCounter) Trace(_ context.Context, _ time.Time, _ func() (string, int64), _ error) {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *QueryCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *QueryCounter) Reset() {
	c.mu.Lock()
	c.n = 0
	c.mu.Unlock()
}
