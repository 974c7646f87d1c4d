package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scamlens/api/internal/config"
	"github.com/scamlens/api/internal/features/discussions"
	"github.com/scamlens/api/internal/features/reports"
	"github.com/scamlens/api/internal/features/scans"
)

// SetupRoutes registers all feature routes under /api
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	discussions.RegisterRoutes(api, db, cfg)
	reports.RegisterRoutes(api, db, cfg)
	scans.RegisterRoutes(api, db, cfg)
}
