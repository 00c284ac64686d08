package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/brokerdesk/brokerage-service/internal/config"
)

// Store bundles both record repositories over one backend.
type Store struct {
	Backend   string
	Payments  PaymentRepository
	Employees EmployeeRepository

	collections []Collection
}

// Connections carries the database handles a backend may need.
type Connections struct {
	Postgres *pgxpool.Pool
	Redis    redis.UniversalClient
}

// NewStore builds repositories from two collections of the same backend.
func NewStore(backend string, payments, employees Collection) *Store {
	return &Store{
		Backend:     backend,
		Payments:    NewPaymentRepository(payments),
		Employees:   NewEmployeeRepository(employees),
		collections: []Collection{payments, employees},
	}
}

// Open selects the backend named in cfg.
func Open(cfg config.StoreConfig, conns Connections) (*Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewStore(cfg.Backend, NewMemoryCollection(), NewMemoryCollection()), nil
	case config.BackendFile:
		if cfg.DataFile == cfg.EmployeesFile {
			return nil, errors.New("payments and employees must use different files")
		}
		return NewStore(cfg.Backend, NewFileCollection(cfg.DataFile), NewFileCollection(cfg.EmployeesFile)), nil
	case config.BackendPostgres:
		if conns.Postgres == nil {
			return nil, errors.New("postgres backend selected without a connection pool")
		}
		return NewStore(cfg.Backend,
			NewPostgresCollection(conns.Postgres, PaymentsCollection),
			NewPostgresCollection(conns.Postgres, EmployeesCollection),
		), nil
	case config.BackendRedis:
		if conns.Redis == nil {
			return nil, errors.New("redis backend selected without a client")
		}
		return NewStore(cfg.Backend,
			NewRedisCollection(conns.Redis, PaymentsCollection),
			NewRedisCollection(conns.Redis, EmployeesCollection),
		), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Ping checks every collection the store uses.
func (s *Store) Ping(ctx context.Context) error {
	for _, c := range s.collections {
		if err := c.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
