package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
)

// backgroundTimeout bounds tracking writes that run after the response.
const backgroundTimeout = 5 * time.Second

type server struct {
	cfg       *config.Config
	store     *store.Store
	projects  *content.Projects
	companies []catalog.Company
	blog      *content.Blog
	mailer    *mailer
	admin     *adminAuth

	wg sync.WaitGroup
}

func newServer(cfg *config.Config, st *store.Store, projects *content.Projects, companies []catalog.Company, blog *content.Blog) *server {
	return &server{
		cfg:       cfg,
		store:     st,
		projects:  projects,
		companies: companies,
		blog:      blog,
		mailer:    newMailer(cfg.SMTP),
		admin:     newAdminAuth(cfg.Admin),
	}
}

// background runs fn after the current request without blocking it.
func (s *server) background(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// Close waits for pending background writes and closes the store.
func (s *server) Close() error {
	s.wg.Wait()
	return s.store.Close()
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())
	r.Use(s.visitorTracking())
	r.LoadHTMLGlob(s.cfg.Server.TemplateGlob)

	r.Static("/images", s.cfg.Server.ImagesDir)
	r.Static("/static", s.cfg.Server.StaticDir)

	// Home page route. The widget state in the query string lets every
	// widget work through plain links too.
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":          "Portfolio",
			"aboutMeContent": AboutMe,
			"projects":       buildProjectCatalog(projectState(c), s.projects),
			"companies":      buildCompanyGrid(expandState(c), s.companies),
		})
	})

	s.setupWidgetRoutes(r)
	s.setupContactRoutes(r)
	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"title": "Not Found",
		})
	})

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	projects, err := content.LoadProjects(cfg.Content.ProjectsFile())
	if err != nil {
		log.Fatalf("Failed to load projects: %v", err)
	}
	companies, err := content.LoadCompanies(cfg.Content.CompaniesFile())
	if err != nil {
		log.Fatalf("Failed to load companies: %v", err)
	}
	blog, err := content.LoadBlog(cfg.Content.BlogDir())
	if err != nil {
		log.Fatalf("Failed to load blog: %v", err)
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Printf("Analytics database ready at %s", cfg.Database.Path)

	srv := newServer(cfg, st, projects, companies, blog)
	srv.logAdminAccess()
	srv.cleanupVisitors()

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	if err := srv.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Stopped")
}
