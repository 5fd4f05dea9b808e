package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

type HealthStatus struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Services  []Dependency `json:"services"`
}

type Dependency struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker pings the stores the board API runs on. Redis is
// optional at bootstrap, so a nil client is skipped rather than
// reported as down.
type HealthChecker struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "healthy", Timestamp: time.Now().UTC()}

	if h.DB != nil {
		status.record(ping(ctx, "PostgreSQL", func(ctx context.Context) error {
			sqlDB, err := h.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}))
	}

	if h.Redis != nil {
		status.record(ping(ctx, "Redis", func(ctx context.Context) error {
			return h.Redis.Ping(ctx).Err()
		}))
	}

	return status
}

func (s *HealthStatus) record(dep Dependency) {
	if dep.Status == "down" {
		s.Status = "degraded"
	}
	s.Services = append(s.Services, dep)
}

func ping(ctx context.Context, name string, fn func(ctx context.Context) error) Dependency {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		return Dependency{Name: name, Status: "down", Message: err.Error()}
	}
	return Dependency{Name: name, Status: "up"}
}
