package main

import (
	"net/url"
	"strconv"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/content"
)

// View models handed to the templates. Everything the templates branch on is
// computed here so the templates stay free of logic.

type chipView struct {
	Name   string
	Active bool
	Action string
	Href   string
}

type linkView struct {
	catalog.Link
	Icon    catalog.Icon
	Primary bool
}

func linkViews(links []catalog.Link) []linkView {
	out := make([]linkView, 0, len(links))
	for _, l := range links {
		out = append(out, linkView{
			Link:    l,
			Icon:    catalog.LinkIcon(l.Type),
			Primary: l.Type == catalog.LinkPrimary,
		})
	}
	return out
}

type projectCardView struct {
	catalog.Project
	Badge       catalog.Badge
	Links       []linkView
	NoLinksText string
}

type catalogView[T any] struct {
	Heading    string
	Intro      string
	EmptyText  string
	MoreText   string
	Chips      []chipView
	Cards      []T
	Total      int
	Empty      bool
	ShowMore   bool
	MoreAction string
	MoreHref   string
}

type projectCatalogView struct {
	catalogView[projectCardView]
	ComingSoonHeading string
	ComingSoonText    string
}

// filterValues encodes a filter state for the next request.
func filterValues(s catalog.FilterState) url.Values {
	return url.Values{
		"filter":  {string(s.Active)},
		"visible": {strconv.Itoa(s.Visible)},
	}
}

// filterStateFrom restores a filter state from request values. Missing or
// malformed values fall back to the initial state.
func filterStateFrom(filter, visible string) catalog.FilterState {
	s := catalog.NewFilterState()
	if filter != "" {
		s.Active = catalog.Category(filter)
	}
	if v, err := strconv.Atoi(visible); err == nil && v >= 0 {
		s.Visible = v
	}
	return s
}

// widgetRoutes says where a filterable widget posts its actions and which
// page the no-script chip links reload.
type widgetRoutes struct {
	Action string
	Page   string
	Anchor string
}

var (
	projectRoutes = widgetRoutes{Action: "/projects", Page: "/", Anchor: "#projects"}
	blogRoutes    = widgetRoutes{Action: "/blog", Page: "/blog"}
)

// deriveCatalog runs the filter derivation and fills the parts of the view
// shared by every filterable widget.
func deriveCatalog[I catalog.Item, V any](
	s catalog.FilterState,
	items []I,
	options []catalog.CategoryOption,
	allName string,
	routes widgetRoutes,
	card func(I) V,
) catalogView[V] {
	filtered, visible := catalog.Derive(s, items)

	v := catalogView[V]{
		Total:    len(filtered),
		Empty:    len(filtered) == 0,
		ShowMore: s.ShowMore(len(filtered)),
	}

	chips := append([]catalog.CategoryOption{{ID: catalog.All, Name: allName}}, options...)
	for _, o := range chips {
		action := filterValues(s)
		action.Set("category", string(o.ID))
		v.Chips = append(v.Chips, chipView{
			Name:   o.Name,
			Active: s.Active == o.ID,
			Action: routes.Action + "/filter?" + action.Encode(),
			Href:   routes.Page + "?" + url.Values{"filter": {string(o.ID)}}.Encode() + routes.Anchor,
		})
	}

	if v.ShowMore {
		next := s
		next.RevealMore()
		v.MoreAction = routes.Action + "/more?" + filterValues(s).Encode()
		v.MoreHref = routes.Page + "?" + filterValues(next).Encode() + routes.Anchor
	}

	v.Cards = make([]V, 0, len(visible))
	for _, it := range visible {
		v.Cards = append(v.Cards, card(it))
	}
	return v
}

func buildProjectCatalog(s catalog.FilterState, p *content.Projects) projectCatalogView {
	v := deriveCatalog(s, p.Items, p.Categories, "All Projects", projectRoutes,
		func(it catalog.Project) projectCardView {
			return projectCardView{
				Project:     it,
				Badge:       catalog.StatusBadge(it.Status),
				Links:       linkViews(it.Links),
				NoLinksText: NoLinksText,
			}
		})
	v.Heading = ProjectsHeading
	v.Intro = ProjectsIntro
	v.EmptyText = ProjectsEmpty
	v.MoreText = SeeMoreProjects

	return projectCatalogView{
		catalogView:       v,
		ComingSoonHeading: ComingSoonHeading,
		ComingSoonText:    ComingSoonText,
	}
}

type postCardView struct {
	content.Post
	Date string
}

type blogIndexView = catalogView[postCardView]

func newPostCard(p content.Post) postCardView {
	return postCardView{Post: p, Date: p.PubDate.Format("Jan 2, 2006")}
}

func buildBlogIndex(s catalog.FilterState, b *content.Blog) blogIndexView {
	v := deriveCatalog(s, b.Posts, b.Categories(), "All Posts", blogRoutes, newPostCard)
	v.Heading = BlogHeading
	v.Intro = BlogIntro
	v.EmptyText = BlogEmpty
	v.MoreText = SeeMorePosts
	return v
}

type companyCardView struct {
	catalog.Company
	Expanded     bool
	ToggleAction string
	Href         string
	Links        []linkView
	Prompt       string
}

type companyGridView struct {
	Heading string
	Intro   string
	Footer  string
	Cards   []companyCardView
}

func buildCompanyGrid(s catalog.ExpandState, companies []catalog.Company) companyGridView {
	v := companyGridView{
		Heading: ContentStrategyHeading,
		Intro:   ContentStrategyIntro,
		Footer:  ContentStrategyFooter,
		Cards:   make([]companyCardView, 0, len(companies)),
	}

	for _, c := range companies {
		next := s
		next.Toggle(c.ID)
		v.Cards = append(v.Cards, companyCardView{
			Company:      c,
			Expanded:     s.IsExpanded(c.ID),
			ToggleAction: "/content-strategy/toggle?" + url.Values{"expanded": {string(s.Expanded)}, "id": {string(c.ID)}}.Encode(),
			Href:         "/?" + url.Values{"expanded": {string(next.Expanded)}}.Encode() + "#content-strategy",
			Links:        linkViews(c.Links),
			Prompt:       ContentStrategyPrompt,
		})
	}
	return v
}
