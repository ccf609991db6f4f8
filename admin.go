// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/seo"
)

const adminCookie = "admin_token"

// Paths that are never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
}

type adminAuth struct {
	username string
	password string
	token    string
	salt     string
}

func newAdminAuth(cfg config.AdminConfig) *adminAuth {
	return &adminAuth{
		username: cfg.Username,
		password: cfg.Password,
		token:    generateAdminToken(),
		// Use for IP hashing
		salt: generateAdminToken(),
	}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP is consistent per IP for the lifetime of the process.
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *adminAuth) validCredentials(username, password string) bool {
	user := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	pass := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return user&pass == 1
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *server) logAdminAccess() {
	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.admin.token)
	}
	if s.cfg.DefaultCredentials() {
		log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
}

func tracked(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	path := c.Request.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	// Respect Do Not Track header
	return c.GetHeader("DNT") != "1"
}

func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracked(c) {
			c.Next()
			return
		}

		hashedIP := s.admin.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		path := c.Request.URL.Path
		s.background(func(ctx context.Context) {
			if err := s.store.RecordVisit(ctx, hashedIP, userAgent, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		})
		c.Next()
	}
}

// cleanupVisitors drops visitor rows past the retention window.
func (s *server) cleanupVisitors() {
	s.background(func(ctx context.Context) {
		n, err := s.store.CleanupVisitors(ctx, s.cfg.Privacy.Retention)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, s.cfg.Privacy.Retention)
		}
	})
}

func (s *server) seoReports() []seo.Report {
	reports, err := seo.ReadReports(s.cfg.SEO.ReportPath)
	if err != nil {
		log.Printf("Error loading SEO reports: %v", err)
		return nil
	}
	return reports
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": fmt.Sprintf("%d days", int(s.cfg.Privacy.Retention.Hours()/24)),
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !s.admin.validCredentials(username, password) {
			log.Printf("Failed admin login attempt from %s", s.admin.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		// Set secure cookie (24 hours)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"title": "Admin",
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":   "Admin Dashboard",
			"stats":   stats,
			"reports": s.seoReports(),
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"title": "Admin",
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	adminGroup.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		n, err := s.store.CleanupVisitors(c.Request.Context(), s.cfg.Privacy.Retention)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")

		log.Printf("Admin stats exported by %s", s.admin.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{
			"stats":       stats,
			"seo_reports": s.seoReports(),
		})
	})
}
