// This file is a helper for running tests against a disposable database
// container. It is used by the integration tests and by the standalone
// cmd/testcontainers executable for local migrate-tool development.
// Expects environment variables to be loaded from .env files.
//

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainers holds the disposable database container and its mapped
// endpoint.
type TestContainers struct {
	DBContainer testcontainers.Container
	Host        string
	Port        nat.Port
}

// Terminate tears the container down. t may be nil when called outside a
// test process.
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database container: %v", err)
		}
	}
}

// CreateDBContainer starts the MariaDB/MySQL image named by DB_IMAGE,
// lets the image entrypoint create the test database and user, and waits
// until the server accepts connections. The environment contract matches
// the service configuration: DB_PORT, DB_DATABASE, DB_USER, DB_PASSWORD,
// plus DB_ROOT_PASSWORD and DB_IMAGE for the container itself.
func CreateDBContainer(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		exitWithError(t, fmt.Errorf("DB_IMAGE is not set"), "Cannot start database container")
	}

	tcpDbPort, err := nat.NewPort("tcp", getEnvDefault("DB_PORT", "3306"))
	if err != nil {
		exitWithError(t, err, "Failed to create DB port")
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "contextdb-test-" + uuid.NewString()[:8],
			Image:        image,
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": getEnvDefault("DB_ROOT_PASSWORD", "rootpass"),
				"MYSQL_DATABASE":      getEnvDefault("DB_DATABASE", "contextdb_test"),
				"MYSQL_USER":          getEnvDefault("DB_USER", "contextdb"),
				"MYSQL_PASSWORD":      getEnvDefault("DB_PASSWORD", "contextdb"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		exitWithError(t, err, "Failed to start database container")
	}
	tc.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to get container host")
	}
	port, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to get container port")
	}
	tc.Host = host
	tc.Port = port

	if err := waitForDB(tc); err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Database never became reachable")
	}

	logMessage(t, "Database container ready at %s:%s", tc.Host, tc.Port.Port())
	return tc, nil
}

// waitForDB pings the server through the raw driver until it answers. The
// listening port opens before the image's init scripts finish, so the
// listening wait alone is not enough.
func waitForDB(tc *TestContainers) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		getEnvDefault("DB_USER", "contextdb"),
		getEnvDefault("DB_PASSWORD", "contextdb"),
		tc.Host,
		tc.Port.Port(),
		getEnvDefault("DB_DATABASE", "contextdb_test"),
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(60 * time.Second)
	for {
		err = db.Ping()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database not reachable: %w", err)
		}
		time.Sleep(time.Second)
	}
}

// DBCredentials returns the database name, user, and password the
// container was provisioned with, so test configuration lines up with the
// image environment.
func DBCredentials() (database, user, password string) {
	return getEnvDefault("DB_DATABASE", "contextdb_test"),
		getEnvDefault("DB_USER", "contextdb"),
		getEnvDefault("DB_PASSWORD", "contextdb")
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf("%s: %v", msg, err)
	}
	log.Fatalf("%s: %v", msg, err)
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
