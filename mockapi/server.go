package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fintrack-labs/fintrack-go/config"
)

// Server bundles the in-memory store with the gin engine that serves the
// backend contract over it.
type Server struct {
	store *Store
	cfg   config.ServerConfig
	log   *zap.Logger
}

func NewServer(cfg config.ServerConfig, log *zap.Logger) (*Server, error) {
	store := NewStore()
	if cfg.Seed {
		if err := store.Seed(); err != nil {
			return nil, err
		}
	}
	return &Server{store: store, cfg: cfg, log: log}, nil
}

// Store exposes the backing store, mainly so tests can inspect state.
func (s *Server) Store() *Store {
	return s.store
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(newRateLimiter(1000, time.Minute).middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.POST("/auth/login/", s.login)
	router.POST("/auth/refresh/", s.refresh)
	router.POST("/user/register/", s.register)

	auth := router.Group("/")
	auth.Use(AuthRequired(s.cfg.JWTSecret))
	{
		auth.GET("/user/me/", s.me)
		auth.PUT("/user/me/profile/", s.updateProfile)

		transactions := auth.Group("/transactions/transactions")
		{
			transactions.GET("/", s.listTransactions)
			transactions.POST("/", s.createTransaction)
			transactions.GET("/stats/", s.transactionStats)
			transactions.GET("/:id/", s.getTransaction)
			transactions.PUT("/:id/", s.updateTransaction)
			transactions.DELETE("/:id/", s.deleteTransaction)
			transactions.POST("/:id/pay/", s.payTransaction)
			transactions.POST("/:id/recalculate_amount/", s.recalculateAmount)
			transactions.POST("/:id/guess_sub_transactions_category/", s.guessCategories)
		}

		subs := auth.Group("/transactions/sub_transactions")
		{
			subs.GET("/", s.listSubTransactions)
			subs.POST("/", s.createSubTransaction)
			subs.GET("/:id/", s.getSubTransaction)
			subs.PUT("/:id/", s.updateSubTransaction)
			subs.DELETE("/:id/", s.deleteSubTransaction)
			subs.POST("/:id/pay/", s.paySubTransaction)
		}

		actors := auth.Group("/transactions/actors")
		{
			actors.GET("/", s.listActors)
			actors.POST("/", s.createActor)
			actors.GET("/stats/", s.actorStats)
			actors.GET("/:id/", s.getActor)
			actors.PUT("/:id/", s.updateActor)
			actors.DELETE("/:id/", s.deleteActor)
		}

		auth.GET("/file_reader/bills/", s.listBills)
		auth.POST("/file_reader/upload/", s.uploadBill)
		auth.POST("/file_reader/upload-sheet/", s.uploadSheet)
		auth.GET("/pdf_reader/bills/:id/", s.getBill)

		chat := auth.Group("/ai/chat")
		{
			chat.POST("/start/", s.startChat)
			chat.GET("/list/", s.listConversations)
			chat.POST("/:id/ask", s.askChat)
			chat.GET("/:id/messages", s.chatMessages)
		}

		auth.GET("/ai/ai-calls/", s.listAICalls)
		auth.GET("/ai/ai-calls/stats/", s.aiCallsStats)
		auth.GET("/ai/embeddings/", s.listEmbeddings)
		auth.GET("/ai/embeddings/stats/", s.embeddingsStats)
	}

	return router
}

// detail writes the backend's error envelope.
func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}
