package reports

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scamlens/api/internal/config"
)

// RegisterRoutes registers the report routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	group := router.Group("/reports")
	{
		group.POST("", handler.Create)
		group.GET("/contract/:contractAddress", handler.ListByContract)
		group.GET("/contract/:contractAddress/stats", handler.ThreatStats)
		group.GET("/reporter/:reporter", handler.ListByReporter)
		group.GET("/stats/threats", handler.PopularThreats)
		group.GET("/stats/contracts", handler.MostReported)
	}
}
