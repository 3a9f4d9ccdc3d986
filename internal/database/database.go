package database

import (
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/orgconsole/b2b-admin-api/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Dialector picks the gorm dialector for the configured driver. An explicit
// DSN wins over the individual host/port/user settings.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverMySQL, "":
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
			)
		}
		return postgres.Open(dsn), nil
	case DriverSQLite:
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// mysqlDSN builds the MySQL DSN from cfg. The driver is told to report matched
// rather than changed rows, so a write that leaves a row as it was still counts
// as touching it.
func mysqlDSN(cfg *config.Config) (string, error) {
	var c *mysqldriver.Config
	if cfg.DBDSN != "" {
		parsed, err := mysqldriver.ParseDSN(cfg.DBDSN)
		if err != nil {
			return "", fmt.Errorf("invalid mysql DSN: %w", err)
		}
		c = parsed
	} else {
		c = mysqldriver.NewConfig()
		c.User = cfg.DBUser
		c.Passwd = cfg.DBPassword
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		c.DBName = cfg.DBName
		c.ParseTime = true
		c.Loc = time.Local
		c.Params = map[string]string{"charset": "utf8mb4"}
	}
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// Connect opens the database and routes gorm's logging through log.
func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.WithField("driver", cfg.DBDriver).Info("Database connection established")
	return db, nil
}

// NewGormLogger adapts a logrus logger to gorm's logger interface.
func NewGormLogger(log *logrus.Logger) logger.Interface {
	level := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}
	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
