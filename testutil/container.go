package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres launches a throwaway postgres:16-alpine container and returns
// a DSN for it together with a function that stops the container.
//
// It is used by TestMain when TEST_POSTGRES_CONTAINER=1 and no
// TEST_DATABASE_URL is provided. Docker must be available.
func StartPostgres(ctx context.Context) (dsn string, terminate func(), err error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "shop",
			"POSTGRES_PASSWORD": "shop",
			"POSTGRES_DB":       "shop",
		},
		// Postgres logs this line twice: once for the init server, once for the real one.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("testutil.StartPostgres: start container: %w", err)
	}

	terminate = func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("testutil.StartPostgres: host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("testutil.StartPostgres: mapped port: %w", err)
	}

	dsn = fmt.Sprintf("postgres://shop:shop@%s:%s/shop?sslmode=disable", host, port.Port())
	return dsn, terminate, nil
}
