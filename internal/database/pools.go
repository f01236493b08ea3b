package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aerosys-mx/bookings-admin/internal/config"
)

// Pools owns one long-lived pgx connection pool per database role.
// Pools are created once at process start and reused for the process
// lifetime; pgxpool handles connection multiplexing, so no additional
// locking is needed for concurrent use.
type Pools struct {
	byRole map[Role]*pgxpool.Pool
}

// NewPools connects one pool per role from the shared database settings and
// validates each with a Ping before returning. On any failure the pools
// already built are closed.
func NewPools(ctx context.Context, cfg *config.DatabaseConfig) (*Pools, error) {
	creds := map[Role]config.Credentials{
		RoleViewer:   cfg.Roles.Viewer,
		RoleOperator: cfg.Roles.Operator,
		RoleAdmin:    cfg.Roles.Admin,
	}

	p := &Pools{byRole: make(map[Role]*pgxpool.Pool, len(creds))}
	for _, role := range Roles() {
		pool, err := buildPool(ctx, cfg, creds[role])
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("connecting pool for %s: %w", role, err)
		}
		p.byRole[role] = pool
	}
	return p, nil
}

// ForRole returns the pool bound to role's credentials. Unknown roles get
// the viewer pool, mirroring ParseRole's least-privilege default.
func (p *Pools) ForRole(role Role) *pgxpool.Pool {
	if pool, ok := p.byRole[role]; ok {
		return pool
	}
	return p.byRole[RoleViewer]
}

// Ping verifies every pool is still reachable.
func (p *Pools) Ping(ctx context.Context) error {
	for role, pool := range p.byRole {
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("ping failed for %s: %w", role, err)
		}
	}
	return nil
}

// Close drains all pools. Call once at process shutdown.
func (p *Pools) Close() {
	for _, pool := range p.byRole {
		if pool != nil {
			pool.Close()
		}
	}
}

// buildPool creates a validated pgxpool for one credential set.
func buildPool(ctx context.Context, cfg *config.DatabaseConfig, cr config.Credentials) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(buildDSN(cfg, cr))
	if err != nil {
		return nil, fmt.Errorf("invalid postgres config: %w", err)
	}

	poolCfg.MaxConns = cfg.Pool.MaxConns
	poolCfg.MinConns = cfg.Pool.MinConns
	poolCfg.MaxConnLifetime = cfg.Pool.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.Pool.MaxConnIdleTime
	poolCfg.ConnConfig.ConnectTimeout = cfg.Pool.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// buildDSN constructs the postgres connection string for one role.
func buildDSN(cfg *config.DatabaseConfig, cr config.Credentials) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, port, cr.User, cr.Password, cfg.Database, sslMode,
	)
}
