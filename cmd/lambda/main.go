package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"rentorbuy/internal/config"
	"rentorbuy/internal/logger"
	"rentorbuy/internal/server"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (h lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Get().Debugw("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return h.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	appConfig, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("failed to load configuration: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)

	deps, cleanup, err := server.Build(appConfig)
	if err != nil {
		logger.Get().Fatalf("failed to initialize dependencies: %v", err)
	}
	defer cleanup()

	// The engine is built once per container and reused across invocations.
	handler := lambdaHandler{ginLambda: ginadapter.New(server.NewRouter(deps))}
	lambda.Start(handler.Handler)
}
