package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/controllers"
	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/middleware"
	"github.com/cppla/qaserver/repository"
	"github.com/cppla/qaserver/services"
	"github.com/cppla/qaserver/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	access := accessLogger(cfg)
	r.Use(middleware.RequestID())
	r.Use(utils.Ginzap(access))
	r.Use(utils.RecoveryWithZap(access, true))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"message": "Hello World"})
	})
	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	answerService := services.NewAnswerService(db, repository.NewAnswerRepository())
	questionService := services.NewQuestionService(db, repository.NewQuestionRepository(), answerService)
	userService := services.NewUserService(db, repository.NewUserRepository())

	questionController := controllers.NewQuestionController(questionService)
	answerController := controllers.NewAnswerController(answerService)
	userController := controllers.NewUserController(userService)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	questionsGroup := api.Group("/questions")
	questionsGroup.POST("", questionController.CreateQuestion)
	questionsGroup.GET("", questionController.ListQuestions)
	questionsGroup.GET("/:question_id", questionController.GetQuestion)
	questionsGroup.DELETE("/:question_id", questionController.DeleteQuestion)
	questionsGroup.POST("/:question_id/answers", answerController.CreateAnswer)
	questionsGroup.GET("/:question_id/answers", answerController.ListAnswers)

	answersGroup := api.Group("/answers")
	answersGroup.GET("/:answer_id", answerController.GetAnswer)
	answersGroup.DELETE("/:answer_id", answerController.DeleteAnswer)

	usersGroup := api.Group("/users")
	usersGroup.POST("", userController.CreateUser)
	usersGroup.GET("", userController.ListUsers)
	usersGroup.GET("/:user_id", userController.GetUser)
	usersGroup.DELETE("/:user_id", userController.DeleteUser)

	api.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, errorz.KindNotFound.Code(), "route "+ctx.Request.URL.Path+" not found")
	})

	return r
}

// accessLogger writes request lines to the gin log file, or to the application logger when no
// file is configured.
func accessLogger(cfg config.AppConfig) *zap.Logger {
	if cfg.GinPath == "" {
		return utils.Logger.Named("http")
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	ws := zapcore.AddSync(utils.NewRollingFileLogger(cfg.GinPath, cfg))
	return zap.New(zapcore.NewCore(enc, ws, zapcore.InfoLevel))
}
