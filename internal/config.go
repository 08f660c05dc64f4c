package internal

import (
	"fmt"
	"time"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=8080"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	StorageDriver     string        `env:"STORAGE_DRIVER,default=sqlite"`
	SQLitePath        string        `env:"SQLITE_PATH,default=slingshot.db"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	BroadcastBuffer   int           `env:"BROADCAST_BUFFER,default=16"`
	AssistDelay       time.Duration `env:"ASSIST_DELAY,default=750ms"`
	SeedDemoUser      bool          `env:"SEED_DEMO_USER,default=false"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverMemory:
		return nil
	}
	return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverMemory, c.StorageDriver)
}
