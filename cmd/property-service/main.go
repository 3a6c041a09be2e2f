package main

import (
	"database/sql"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/RockerInt/Properties/internal/config"
	"github.com/RockerInt/Properties/internal/logging"
	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/propertiespb"
	"github.com/RockerInt/Properties/internal/property/handler"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/RockerInt/Properties/internal/property/rpc"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
)

func main() {
	cfg := config.LoadPropertyService()
	logger := logging.New("property-service")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	propertyRepo := repository.NewPropertyRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	imageRepo := repository.NewPropertyImageRepository(db)
	traceRepo := repository.NewPropertyTraceRepository(db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "property-service"})
	})

	v1 := router.Group("/api/v1")
	handler.NewPropertyHandler(propertyRepo, logger).RegisterRoutes(v1)
	handler.NewOwnerHandler(ownerRepo, logger).RegisterRoutes(v1)
	handler.NewPropertyImageHandler(imageRepo, logger).RegisterRoutes(v1)
	handler.NewPropertyTraceHandler(traceRepo, logger).RegisterRoutes(v1)

	grpcServer := grpc.NewServer()
	propertiespb.RegisterPropertyServiceServer(grpcServer, rpc.NewPropertyServer(propertyRepo, logger))
	propertiespb.RegisterPropertyTraceServiceServer(grpcServer, rpc.NewPropertyTraceServer(traceRepo, logger))

	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			logger.Error("failed to listen for grpc", "port", cfg.GRPCPort, "error", err)
			os.Exit(1)
		}
		logger.Info("grpc server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc server stopped", "error", err)
		}
	}()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutting down")
		grpcServer.GracefulStop()
		os.Exit(0)
	}()

	logger.Info("property service starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
