package main

var (
	AboutMe = `I work where data, automation and Web3 meet: I build n8n pipelines that take the busywork out of
	publishing, analyse on-chain and product data to find what actually moves users, and write about
	all of it for readers who are new to crypto. Most projects start as a question I could not answer
	with the dashboards I had.`

	ProjectsHeading = "My Projects"
	ProjectsIntro   = `Explore my diverse portfolio across key areas of data science, automation, and blockchain analytics`
	ProjectsEmpty   = "No projects found in this category"
	SeeMoreProjects = "See More Projects"

	ComingSoonHeading = "More Projects Coming Soon"
	ComingSoonText    = `I'm constantly working on new projects in machine learning, automation, and blockchain analytics.
	Check back regularly for updates!`

	NoLinksText = "Details coming soon"

	ContentStrategyHeading = "Content Strategy in Action"
	ContentStrategyIntro   = `My analysis and content have been featured on leading platforms in the Web3 and tech space`
	ContentStrategyFooter  = "Click any company to view detailed achievements and work samples"
	ContentStrategyPrompt  = "Click to explore"

	BlogHeading  = "Writing"
	BlogIntro    = `Guides, breakdowns and notes from building data and automation projects`
	BlogEmpty    = "No posts found in this category"
	SeeMorePosts = "See More Posts"
)
