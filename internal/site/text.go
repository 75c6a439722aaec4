package site

var (
	HeroBadge = "🚀 Welcome to my Portfolio"

	HeroDescription = `Crafting beautiful digital experiences with modern web technologies.
	Specialized in Go, server-rendered interfaces, and creative animations.`

	ProjectsIntro = `A collection of my recent work showcasing various technologies and
	creative solutions`

	NoLinksNote = "This is the site you're currently viewing."

	FooterNote = "using Go, Gin, Tailwind CSS, and CSS view transitions"
)
