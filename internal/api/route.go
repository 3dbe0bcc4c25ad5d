package api

import (
	"Lexnet/internal/api/middleware"
	"Lexnet/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		threadGroup := apiGroup.Group("/threads")
		{
			authOptGroup := threadGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:entity_id", group.ThreadHandler.GetThread)
				authOptGroup.GET("/:entity_id/state", group.ThreadHandler.GetEntityState)
			}

			authGroup := threadGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:entity_id/replies", group.ThreadHandler.AddReply)
				authGroup.DELETE("/replies/:reply_id", group.ThreadHandler.DeleteReply)
				authGroup.POST("/:entity_id/best-answer/:reply_id", group.ThreadHandler.MarkBestAnswer)
				authGroup.POST("/:entity_id/resolve", group.ThreadHandler.MarkResolved)
			}
		}

		toggleGroup := apiGroup.Group("/reactions")
		{
			toggleGroup.Use(middleware.AuthMiddleware())
			toggleGroup.POST("/toggle", group.ToggleHandler.Toggle)
		}

		noteGroup := apiGroup.Group("/notes")
		{
			noteGroup.Use(middleware.AuthMiddleware())
			{
				noteGroup.POST("", group.NoteHandler.CreateNote)
				noteGroup.GET("/entity/:entity_id", group.NoteHandler.GetNotes)
				noteGroup.DELETE("/:note_id", group.NoteHandler.DeleteNote)
			}
		}
	}

	return r
}
