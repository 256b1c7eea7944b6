package main

import (
	"log/slog"
	"os"

	"fluxcrm/config"
	"fluxcrm/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config.Load()
	config.ConnectDB()
	defer config.DisconnectDB()
	config.ConnectRedis()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	origins := config.CORSOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r)

	slog.Info("Starting Flux CRM API", "port", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
