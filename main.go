package main

import (
	"time"

	"coaching-app/config"
	"coaching-app/database"
	routes "coaching-app/internal/app/http"
	"coaching-app/internal/domain/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	database.InitDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.APP_URL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	checker := access.NewChecker(access.NewGormStore(database.DB), logger)
	routes.RegisterRoutes(r, checker)

	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
