package database

import (
	"context"
	"time"
)

// PoolHealth is the snapshot the orchestrator's health endpoint reports:
// a liveness ping plus the pool counters worth watching when dispatch
// latency climbs.
type PoolHealth struct {
	Status     string `json:"status"`
	PingMillis int64  `json:"ping_ms"`
	Open       int    `json:"open_connections"`
	InUse      int    `json:"in_use"`
	Idle       int    `json:"idle"`
	WaitCount  int64  `json:"wait_count"`
	WaitMillis int64  `json:"wait_ms"`
	MaxOpen    int    `json:"max_open_connections"`
}

// Health pings the database and snapshots the connection pool. On ping
// failure the returned status still carries the measured latency.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &PoolHealth{
		Status:     "healthy",
		PingMillis: time.Since(start).Milliseconds(),
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		WaitCount:  stats.WaitCount,
		WaitMillis: stats.WaitDuration.Milliseconds(),
		MaxOpen:    stats.MaxOpenConnections,
	}, nil
}
