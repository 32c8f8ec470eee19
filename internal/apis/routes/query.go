package routes

import (
	"log"

	"askdb-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupQueryRoutes(router *gin.Engine) {
	queryHandler, err := di.GetQueryHandler()
	if err != nil {
		log.Fatalf("Failed to get query handler: %v", err)
	}

	api := router.Group("/api")
	{
		api.POST("/queries/ask", queryHandler.Ask)
		api.POST("/queries/execute", queryHandler.Execute)
		api.GET("/schema", queryHandler.GetTables)
	}
}
