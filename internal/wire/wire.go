package wire

import (
	"Lexnet/internal/api"
	"Lexnet/internal/api/config"
	"Lexnet/internal/api/handler"
	"Lexnet/internal/job"
	"Lexnet/internal/pkg/cron"
	pkgmongo "Lexnet/internal/pkg/mongo"
	"Lexnet/internal/repository"
	"Lexnet/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the app runs on.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	entityRepo := repository.NewEntityRepo(db)
	replyRepo := repository.NewReplyRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	noteRepo := pkgmongo.NewNoteRepo(mongoDB)

	counterCache := service.NewCounterCache()

	threadService := service.NewThreadService(entityRepo, replyRepo, reactionRepo, counterCache)
	toggleService := service.NewToggleService(entityRepo, replyRepo, reactionRepo, counterCache)
	noteService := service.NewNoteService(entityRepo, noteRepo)

	handlers := &api.HandlersGroup{
		ThreadHandler: handler.NewThreadHandler(threadService),
		ToggleHandler: handler.NewToggleHandler(toggleService),
		NoteHandler:   handler.NewNoteHandler(noteService),
	}

	router := api.SetupRouter(handlers)

	auditJob := job.NewCounterAuditJob(entityRepo, replyRepo, reactionRepo)
	cronMgr := cron.NewCronManager(auditJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
