package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/store"
)

// Widget endpoints. Widget state travels in the query string; each action
// restores the state, applies one transition and re-renders the fragment.

func projectState(c *gin.Context) catalog.FilterState {
	return filterStateFrom(c.Query("filter"), c.Query("visible"))
}

func expandState(c *gin.Context) catalog.ExpandState {
	return catalog.ExpandState{Expanded: catalog.ID(c.Query("expanded"))}
}

// recordInteraction stores a widget interaction without holding up the
// response.
func (s *server) recordInteraction(widget, action, value string) {
	s.background(func(ctx context.Context) {
		if err := s.store.RecordInteraction(ctx, widget, action, value); err != nil {
			log.Printf("Error recording interaction: %v", err)
		}
	})
}

func (s *server) setupWidgetRoutes(r *gin.Engine) {
	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", buildProjectCatalog(projectState(c), s.projects))
	})

	r.POST("/projects/filter", func(c *gin.Context) {
		state := projectState(c)
		category := catalog.Category(c.Query("category"))
		state.SetFilter(category)
		s.recordInteraction(store.WidgetProjects, store.ActionFilter, string(category))
		c.HTML(http.StatusOK, "projects.html", buildProjectCatalog(state, s.projects))
	})

	r.POST("/projects/more", func(c *gin.Context) {
		state := projectState(c)
		state.RevealMore()
		s.recordInteraction(store.WidgetProjects, store.ActionReveal, string(state.Active))
		c.HTML(http.StatusOK, "projects.html", buildProjectCatalog(state, s.projects))
	})

	r.GET("/content-strategy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "companies.html", buildCompanyGrid(expandState(c), s.companies))
	})

	r.POST("/content-strategy/toggle", func(c *gin.Context) {
		state := expandState(c)
		id := catalog.ID(c.Query("id"))
		if id != "" {
			state.Toggle(id)
			s.recordInteraction(store.WidgetCompanies, store.ActionToggle, string(id))
		}
		c.HTML(http.StatusOK, "companies.html", buildCompanyGrid(state, s.companies))
	})

	r.GET("/blog", func(c *gin.Context) {
		c.HTML(http.StatusOK, "blog.html", gin.H{
			"title": BlogHeading,
			"list":  buildBlogIndex(projectState(c), s.blog),
		})
	})

	r.POST("/blog/filter", func(c *gin.Context) {
		state := projectState(c)
		category := catalog.Category(c.Query("category"))
		state.SetFilter(category)
		s.recordInteraction(store.WidgetBlog, store.ActionFilter, string(category))
		c.HTML(http.StatusOK, "blog-list.html", buildBlogIndex(state, s.blog))
	})

	r.POST("/blog/more", func(c *gin.Context) {
		state := projectState(c)
		state.RevealMore()
		s.recordInteraction(store.WidgetBlog, store.ActionReveal, string(state.Active))
		c.HTML(http.StatusOK, "blog-list.html", buildBlogIndex(state, s.blog))
	})

	r.GET("/blog/:slug", func(c *gin.Context) {
		post, ok := s.blog.Post(c.Param("slug"))
		if !ok {
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{
				"title": "Not Found",
			})
			return
		}
		c.HTML(http.StatusOK, "post.html", gin.H{
			"title": post.Title,
			"post":  newPostCard(post),
		})
	})
}
