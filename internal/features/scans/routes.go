package scans

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scamlens/api/internal/config"
)

// RegisterRoutes registers the scan routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	group := router.Group("/scans")
	{
		group.POST("", handler.Create)
		group.GET("/:contractAddress/latest", handler.Latest)
		group.GET("/:contractAddress/history", handler.History)
	}
}
