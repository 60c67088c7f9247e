package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/qbmille/trivia-api/docs"
	v1 "github.com/qbmille/trivia-api/internal/api/handler/v1"
	"github.com/qbmille/trivia-api/internal/api/middleware"
	"github.com/qbmille/trivia-api/internal/cache"
	"github.com/qbmille/trivia-api/internal/config"
	"github.com/qbmille/trivia-api/internal/repository"
	"github.com/qbmille/trivia-api/internal/repository/dao"
	"github.com/qbmille/trivia-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, catalogCache *cache.Cache) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	palmaresRepo := repository.NewPalmaresRepository(dao.NewPalmaresDAO(db))

	uSvc := service.NewUserService(userRepo)
	pSvc := service.NewProgressService(palmaresRepo, catalogRepo)

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(uSvc, pSvc)
	catalogHandler := v1.NewCatalogHandler(service.NewCatalogService(catalogRepo, catalogCache), uSvc)
	gameHandler := v1.NewGameHandler(pSvc, uSvc)
	uploadHandler := v1.NewUploadHandler(service.NewUploadService(conf.Upload), uSvc)

	s.MountHandlers(authHandler, userHandler, catalogHandler, gameHandler, uploadHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	catalogHandler *v1.CatalogHandler,
	gameHandler *v1.GameHandler,
	uploadHandler *v1.UploadHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/me", userHandler.HandleGetMe)
		users.POST("/onboarding", userHandler.HandleOnboarding)
		users.GET("/users", userHandler.HandleListUsers)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.PUT("/users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
	}

	catalog := s.Router.Group(basePath, verifyJWT)
	{
		catalog.GET("/stages", catalogHandler.HandleListStages)
		catalog.POST("/stages", catalogHandler.HandleCreateStage)
		catalog.GET("/stages/:stageID", catalogHandler.HandleGetStage)
		catalog.PUT("/stages/:stageID", catalogHandler.HandleUpdateStage)
		catalog.DELETE("/stages/:stageID", catalogHandler.HandleDeleteStage)

		catalog.GET("/sections", catalogHandler.HandleListSections)
		catalog.POST("/sections", catalogHandler.HandleCreateSection)
		catalog.GET("/sections/:sectionID", catalogHandler.HandleGetSection)
		catalog.PUT("/sections/:sectionID", catalogHandler.HandleUpdateSection)
		catalog.DELETE("/sections/:sectionID", catalogHandler.HandleDeleteSection)

		catalog.GET("/jeux", catalogHandler.HandleListJeux)
		catalog.POST("/jeux", catalogHandler.HandleCreateJeu)
		catalog.GET("/jeux/:jeuID", catalogHandler.HandleGetJeu)
		catalog.PUT("/jeux/:jeuID", catalogHandler.HandleUpdateJeu)
		catalog.DELETE("/jeux/:jeuID", catalogHandler.HandleDeleteJeu)

		catalog.GET("/questions", catalogHandler.HandleListQuestions)
		catalog.POST("/questions", catalogHandler.HandleCreateQuestion)
		catalog.PUT("/questions/:questionID", catalogHandler.HandleUpdateQuestion)
		catalog.DELETE("/questions/:questionID", catalogHandler.HandleDeleteQuestion)

		catalog.POST("/reponses", catalogHandler.HandleCreateReponse)
		catalog.PUT("/reponses/:reponseID", catalogHandler.HandleUpdateReponse)
		catalog.DELETE("/reponses/:reponseID", catalogHandler.HandleDeleteReponse)
	}

	game := s.Router.Group(basePath, verifyJWT)
	{
		game.POST("/game/start", gameHandler.HandleStartGame)
		game.GET("/game/board", gameHandler.HandleGetBoard)
		game.GET("/game/current", gameHandler.HandleGetCurrent)
		game.POST("/game/jeux/:jeuID/submit", gameHandler.HandleSubmitJeu)
		game.POST("/game/advance", gameHandler.HandleAdvance)

		game.GET("/palmares", gameHandler.HandleListPalmares)
		game.GET("/palmares/me", gameHandler.HandleMyPalmares)

		game.POST("/images", uploadHandler.HandleUploadImage)
	}

	// Uploaded images are served straight from disk.
	s.Router.Static(s.Config.Upload.BaseURL, s.Config.Upload.Dir)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Bible Trivia API"
	docs.SwaggerInfo.Description = "REST API for the bilingual Bible trivia game."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
