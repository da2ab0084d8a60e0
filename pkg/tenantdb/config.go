package tenantdb

import (
	"strings"
	"time"
)

// TenantPlaceholder is the token replaced with the tenant identifier when
// expanding the URI and database name templates.
const TenantPlaceholder = "{tenant}"

// Config represents the per-process configuration for tenant databases.
type Config struct {
	URITemplate          string        `env:"TENANTDB_URI_TEMPLATE,required"`                          // URITemplate is the connection string with a {tenant} placeholder.
	DatabaseTemplate     string        `env:"TENANTDB_DATABASE_TEMPLATE" envDefault:"campus_{tenant}"` // DatabaseTemplate is the database name with a {tenant} placeholder.
	MaxPoolSize          uint64        `env:"TENANTDB_MAX_POOL_SIZE" envDefault:"100"`                 // MaxPoolSize is the maximum number of connections in the pool.
	MinPoolSize          uint64        `env:"TENANTDB_MIN_POOL_SIZE" envDefault:"1"`                   // MinPoolSize is the minimum number of connections in the pool.
	ConnectTimeout       time.Duration `env:"TENANTDB_CONNECT_TIMEOUT" envDefault:"10s"`               // ConnectTimeout is the budget for opening one tenant connection.
	OperationTimeout     time.Duration `env:"TENANTDB_OPERATION_TIMEOUT" envDefault:"30s"`             // OperationTimeout is the default budget for a single database call.
	ConnectAttempts      uint          `env:"TENANTDB_CONNECT_ATTEMPTS" envDefault:"3"`                // ConnectAttempts is the number of connect attempts within the budget.
	ConnectRetryInterval time.Duration `env:"TENANTDB_CONNECT_RETRY_INTERVAL" envDefault:"2s"`         // ConnectRetryInterval is the pause between connect attempts.
}

// URIFor expands the URI template for the given tenant identifier.
func (c Config) URIFor(tenantID string) string {
	return strings.ReplaceAll(c.URITemplate, TenantPlaceholder, tenantID)
}

// DatabaseFor expands the database name template for the given tenant identifier.
func (c Config) DatabaseFor(tenantID string) string {
	return strings.ReplaceAll(c.DatabaseTemplate, TenantPlaceholder, tenantID)
}
