package discussions

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scamlens/api/internal/config"
)

// RegisterRoutes registers the discussion routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	group := router.Group("/discussions")
	{
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("", handler.Create)
		group.POST("/:id/replies", handler.AddReply)
		group.POST("/:id/vote", handler.Vote)
		group.POST("/:id/replies/:replyId/vote", handler.VoteOnReply)
	}
}
