package main

import (
	"os"

	"github.com/RockerInt/Properties/internal/config"
	"github.com/RockerInt/Properties/internal/gateway/client"
	"github.com/RockerInt/Properties/internal/gateway/handler"
	"github.com/RockerInt/Properties/internal/gateway/service"
	"github.com/RockerInt/Properties/internal/logging"
	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadGateway()
	logger := logging.New("gateway")

	properties, err := client.NewPropertyClient(cfg, logger)
	if err != nil {
		logger.Error("failed to build property client", "error", err)
		os.Exit(1)
	}
	images := client.NewPropertyImageClient(cfg.PropertiesServiceURL, logger)

	propertiesService := service.New(properties, images, logger)
	gatewayHandler := handler.NewGatewayHandler(propertiesService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "gateway"})
	})

	v1 := router.Group("/api/v1")
	gatewayHandler.RegisterRoutes(v1)

	transport := "rest"
	if cfg.UseGRPC {
		transport = "grpc"
	}
	logger.Info("gateway starting", "port", cfg.Port, "transport", transport)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
