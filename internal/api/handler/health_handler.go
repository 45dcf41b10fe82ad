package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// readinessTimeout bounds the whole probe, not each check.
const readinessTimeout = 3 * time.Second

// HealthHandler answers the liveness probe. It has no dependencies: a 200
// only means the process is up and serving.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler answers the readiness probe by exercising each backing
// store before declaring the service ready to take traffic.
type ReadinessHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		mongo: db,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// readinessCheck probes a single dependency. Checks sharing a name overwrite
// the previous result, so a deeper check can downgrade a shallow one.
type readinessCheck struct {
	name  string
	probe func(context.Context) error
}

func (h *ReadinessHandler) checks() []readinessCheck {
	return []readinessCheck{
		// Cluster reachable.
		{"mongodb", func(ctx context.Context) error {
			return h.mongo.Client().Ping(ctx, nil)
		}},
		// The database itself answers commands, not just the topology.
		{"mongodb", func(ctx context.Context) error {
			return h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}},
		{"redis", func(ctx context.Context) error {
			return h.redis.Ping(ctx).Err()
		}},
	}
}

// Readiness reports whether MongoDB and Redis are reachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	degraded := false

	for _, check := range h.checks() {
		if prev, seen := deps[check.name]; seen && prev.Status != "ok" {
			continue
		}
		if err := check.probe(ctx); err != nil {
			deps[check.name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			degraded = true
			continue
		}
		deps[check.name] = dependencyStatus{Status: "ok"}
	}

	resp := readinessResponse{Status: "ok", Dependencies: deps}
	code := http.StatusOK
	if degraded {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
