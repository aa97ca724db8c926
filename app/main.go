package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "newsbrief/internal/repository/mysql"
	redisCache "newsbrief/internal/repository/redis"
	"newsbrief/internal/rest"
	"newsbrief/internal/rest/middleware"
	"newsbrief/internal/usecase/analytics"
	"newsbrief/internal/usecase/article"
	"newsbrief/internal/usecase/comment"
	"newsbrief/internal/usecase/trending"
	"newsbrief/internal/usecase/user"
	"newsbrief/internal/workers"

	"newsbrief/domain"
)

const (
	defaultTimeout          = 30
	defaultAddress          = ":9090"
	defaultCacheDB          = 0
	defaultJWTExpireHours   = 24
	defaultRecomputeMinutes = 60
	defaultReportDir        = "./reports"
	dbMaxRetry              = 10
	dbRetryIntervalSec      = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					break
				}
				_ = sqlDB.Close()
			}
		}
		log.Printf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	articleRepo := mysqlRepo.NewArticleRepository(db)
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	articleCache := redisCache.NewArticleCache(client)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")
	jwtTTL, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = defaultJWTExpireHours
	}
	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = defaultReportDir
	}

	articleSvc := article.NewService(articleRepo, userRepo, articleCache)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo)
	trendingSvc := trending.NewService(articleRepo, articleCache)
	analyticsSvc := analytics.NewService(trendingSvc, reportDir)
	userSvc := user.NewService(userRepo, []byte(jwtSecret), time.Duration(jwtTTL)*time.Hour)

	articleHandler := rest.NewArticleHandler(articleSvc, trendingSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	userHandler := rest.NewUserHandler(userSvc)

	// Start background scheduler
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recomputeMinutes, err := strconv.Atoi(os.Getenv("RECOMPUTE_INTERVAL_MINUTES"))
	if err != nil || recomputeMinutes <= 0 {
		recomputeMinutes = defaultRecomputeMinutes
	}
	scheduler := workers.NewScheduler(trendingSvc, analyticsSvc, time.Duration(recomputeMinutes)*time.Minute)
	go scheduler.Start(ctx)

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/articles", articleHandler.Fetch)
	route.GET("/articles/newest", articleHandler.Newest)
	route.GET("/articles/trending", articleHandler.TopTrending)
	route.GET("/articles/top", articleHandler.TopByMetric)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/comments", commentHandler.FetchByArticle)
	route.GET("/articles/:id/liked", middleware.OptionalAuthMiddleware(jwtSecret), articleHandler.IsLiked)

	authorized := route.Group("/", middleware.AuthMiddleware(jwtSecret))
	{
		authorized.POST("/articles/:id/like", articleHandler.ToggleLike)
		authorized.POST("/articles/:id/comments", commentHandler.Create)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
	}

	admin := route.Group("/", middleware.AuthMiddleware(jwtSecret), middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/articles", articleHandler.Store)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
