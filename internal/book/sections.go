package book

// Section names one fallback content directory and its part title.
type Section struct {
	Dir   string
	Title string
}

// DefaultSections fixes the reading order of the operational parts that
// follow the manifest-ordered chapters. Directories not listed here are
// never emitted, even when present on disk. The ordering is injectable via
// WithSections.
var DefaultSections = []Section{
	{"company", "Company"},
	{"people", "People"},
	{"engineering", "Engineering"},
	{"product", "Product"},
	{"content", "Content"},
	{"marketing", "Marketing"},
	{"growth", "Growth"},
	{"support", "Support"},
	{"cs-and-onboarding", "CS & Onboarding"},
	{"brand", "Brand"},
	{"community", "Community"},
	{"getting-started", "Getting Started"},
	{"exec", "Exec"},
	{"onboarding", "Onboarding"},
	{"docs-and-wizard", "Docs & Wizard"},
}
