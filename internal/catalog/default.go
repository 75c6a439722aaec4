package catalog

var defaultProjects = []Project{
	{
		ID:    "e-commerce",
		Title: "E-Commerce Platform",
		Description: "Full-stack e-commerce solution with advanced features including product catalog, " +
			"cart management, and secure payment processing.",
		FullDescription: "A comprehensive e-commerce platform built from the ground up. Features include " +
			"real-time inventory management, advanced search with filters, secure Stripe payment integration, " +
			"order tracking, and an admin dashboard for managing products and orders.",
		Tags:  []string{"React", "Node.js", "MongoDB", "Stripe"},
		Color: "from-purple-500 to-pink-500",
		Icon:  "rocket",
		Size:  SizeLarge,
	},
	{
		ID:          "design-system",
		Title:       "Design System",
		Description: "Comprehensive component library with 50+ reusable components.",
		FullDescription: "A fully documented design system featuring 50+ accessible, customizable components. " +
			"Includes dark mode support, responsive variants, and comprehensive Storybook documentation " +
			"with interactive examples.",
		Tags:  []string{"React", "TailwindCSS", "Storybook"},
		Color: "from-cyan-500 to-blue-500",
		Icon:  "palette",
		Size:  SizeMedium,
	},
	{
		ID:          "ai-chatbot",
		Title:       "AI Chat Bot",
		Description: "Intelligent chatbot powered by OpenAI with context-aware responses.",
		FullDescription: "An AI-powered chatbot with conversation memory, context awareness, and streaming " +
			"responses. Features include conversation history, custom persona settings, and integration " +
			"with various data sources for enhanced responses.",
		Tags:  []string{"Next.js", "OpenAI", "TypeScript"},
		Color: "from-green-500 to-emerald-500",
		Icon:  "sparkles",
		Size:  SizeMedium,
	},
	{
		ID:          "analytics-dashboard",
		Title:       "Analytics Dashboard",
		Description: "Real-time analytics platform with interactive charts and data visualization.",
		FullDescription: "A real-time analytics dashboard featuring interactive D3.js visualizations, " +
			"customizable widgets, data export capabilities, and automated report generation. Handles " +
			"millions of data points with optimized performance.",
		Tags:  []string{"React", "D3.js", "PostgreSQL"},
		Color: "from-orange-500 to-red-500",
		Icon:  "database",
		Size:  SizeWide,
	},
	{
		ID:          "api-gateway",
		Title:       "API Gateway",
		Description: "High-performance API gateway with rate limiting and caching.",
		FullDescription: "A robust API gateway handling 10,000+ requests per second. Features include " +
			"intelligent rate limiting, Redis caching, request/response transformation, authentication " +
			"middleware, and comprehensive logging with metrics.",
		Tags:  []string{"Node.js", "Redis", "Docker"},
		Color: "from-indigo-500 to-purple-500",
		Icon:  "zap",
		Size:  SizeMedium,
	},
	{
		ID:          "portfolio",
		Title:       "Portfolio Website",
		Description: "Modern portfolio site with animations and responsive design.",
		FullDescription: "This very website you're viewing! Built with TanStack Start for server-side rendering, " +
			"GSAP for smooth animations, and Tailwind CSS for styling. Features include view transitions " +
			"and a responsive bento grid layout.",
		Tags:  []string{"TanStack Start", "GSAP", "Tailwind"},
		Color: "from-pink-500 to-rose-500",
		Icon:  "globe",
		Size:  SizeMedium,
	},
	{
		ID:          "mobile-app",
		Title:       "Mobile App",
		Description: "Cross-platform mobile application with native performance.",
		FullDescription: "A cross-platform mobile app with native-like performance. Features include offline " +
			"support, push notifications, biometric authentication, and seamless synchronization across devices.",
		Tags:  []string{"React Native", "Expo", "Firebase"},
		Color: "from-blue-500 to-cyan-500",
		Icon:  "smartphone",
		Size:  SizeTall,
	},
	{
		ID:          "code-editor",
		Title:       "Code Editor",
		Description: "Web-based code editor with syntax highlighting and autocomplete.",
		FullDescription: "A powerful web-based code editor built on Monaco Editor. Features include " +
			"multi-language support, intelligent autocomplete, real-time collaboration, and " +
			"WebAssembly-powered Rust tooling for enhanced performance.",
		Tags:  []string{"Monaco", "WebAssembly", "Rust"},
		Color: "from-yellow-500 to-orange-500",
		Icon:  "code",
		Size:  SizeMedium,
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultProjects)
	if err != nil {
		panic("catalog: built-in projects are invalid: " + err.Error())
	}
	return c
}
