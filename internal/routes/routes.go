package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/mkarvo/hello-service/internal/middleware"
)

// RootMessage is the greeting returned by GET /. The wording is part of the
// documented contract and must not change.
const RootMessage = "Hello from Flask + Docker + Makefile!"

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	registerRoot(api)
	registerHealth(api)
}

// RootData models the payload for the root route.
type RootData struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from Flask + Docker + Makefile!"`
	Path    string `json:"path"    doc:"Request path"     example:"/"`
}

// RootOutput is the response wrapper for the root endpoint.
type RootOutput struct {
	Body RootData
}

func registerRoot(api huma.API) {
	huma.Get(api, "/", func(ctx context.Context, _ *struct{}) (*RootOutput, error) {
		appmiddleware.LogInfo(ctx, "root request", zap.String("path", "/"))
		return &RootOutput{Body: RootData{Message: RootMessage, Path: "/"}}, nil
	})
}

// HealthData models the payload for the health route.
type HealthData struct {
	Status string `json:"status" doc:"Health status" example:"ok"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

// registerHealth wires the liveness route. It performs no downstream checks:
// a 200 means only that the process is accepting connections and running
// handler code. Restart policy on failure belongs to the orchestrator.
func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: HealthData{Status: "ok"}}, nil
	})
}
