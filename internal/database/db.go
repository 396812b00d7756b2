package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"modernc.org/sqlite"
)

// Dialect names one of the supported SQL backends.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// foldFunc is the SQLite function registered by init.  SQLite's own LOWER
// only folds ASCII letters.
const foldFunc = "fold"

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(string(SQLite), sqlx.QUESTION)
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

// fold lower-cases a text value with Unicode case mapping.  NULL stays NULL.
func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// ParseDialect maps a configured driver name onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pq":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", s)
}

// UsesReturning reports whether inserts must read the generated id through
// RETURNING because the driver does not implement LastInsertId.
func (d Dialect) UsesReturning() bool {
	return d == Postgres
}

// Lower returns the SQL function that lower-cases text with full Unicode
// case mapping on this dialect.
func (d Dialect) Lower() string {
	if d == SQLite {
		return foldFunc
	}
	return "LOWER"
}

// DefaultPort is the server port assumed when none is configured.  SQLite
// has no server and returns "".
func (d Dialect) DefaultPort() string {
	switch d {
	case MySQL:
		return "3306"
	case Postgres:
		return "5432"
	}
	return ""
}

// Options describes how to reach the database.  Path is only used by SQLite;
// ":memory:" opens a private in-memory database.
type Options struct {
	Dialect Dialect
	User    string
	Pass    string
	Host    string
	Port    string
	Name    string
	SSLMode string
	Path    string
}

// DSN builds the driver-specific connection string.
func (o Options) DSN() string {
	port := o.Port
	if port == "" {
		port = o.Dialect.DefaultPort()
	}
	switch o.Dialect {
	case Postgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(o.User, o.Pass),
			Host:   o.Host + ":" + port,
			Path:   "/" + o.Name,
		}
		sslMode := o.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u.RawQuery = "sslmode=" + url.QueryEscape(sslMode)
		return u.String()
	case SQLite:
		path := o.Path
		if path == "" {
			path = ":memory:"
		}
		return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	default:
		auth := o.User
		if o.Pass != "" {
			auth = fmt.Sprintf("%s:%s", o.User, o.Pass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		// clientFoundRows=true -> RowsAffected counts matched rows, not changed rows
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
			auth, o.Host, port, o.Name)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, o Options) (*sqlx.DB, error) {
	if o.Dialect == "" {
		o.Dialect = MySQL
	}
	db, err := sqlx.Open(string(o.Dialect), o.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.Dialect, err)
	}

	// Pool settings
	if o.Dialect == SQLite {
		// single writer; an in-memory database lives only as long as its connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Ping with timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", o.Dialect, err)
	}
	return db, nil
}
