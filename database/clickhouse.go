// api/database/clickhouse.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"devfolio/api/logger"
	"devfolio/api/utils"
)

// ClickHouseClient wraps the native-protocol connection to the append-only
// pageview analytics store.
type ClickHouseClient struct {
	Conn clickhouse.Conn
	log  *logger.Logger
}

func NewClickHouseDB(log *logger.Logger) (*ClickHouseClient, error) {
	host := utils.EnvString("CLICKHOUSE_HOST", "")
	dbName := utils.EnvString("CLICKHOUSE_DB_NAME", "")
	if host == "" || dbName == "" {
		return nil, fmt.Errorf("CLICKHOUSE_HOST or CLICKHOUSE_DB_NAME environment variables are not set")
	}
	nativePort := utils.EnvInt("CLICKHOUSE_NATIVE_PORT", 9000)

	options := &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", host, nativePort)},
		Auth: clickhouse.Auth{
			Database: dbName,
			Username: utils.EnvString("CLICKHOUSE_USERNAME", "default"),
			Password: utils.EnvString("CLICKHOUSE_PASSWORD", ""),
		},
		ClientInfo: clickhouse.ClientInfo{
			Products: []struct {
				Name    string
				Version string
			}{{Name: "devfolio-api", Version: "1.0.0"}},
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		DialTimeout: time.Second * 5,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse via Native TCP: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	log.Info("connected to ClickHouse analytics database")
	return &ClickHouseClient{Conn: conn, log: log}, nil
}

func (c *ClickHouseClient) Close() {
	if c.Conn != nil {
		c.Conn.Close()
		c.log.Info("ClickHouse connection closed")
	}
}
