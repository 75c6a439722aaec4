package catalog

// Size is the bento grid footprint of a project card.
type Size string

const (
	SizeLarge  Size = "large"  // 2x2
	SizeMedium Size = "medium" // 1x1
	SizeWide   Size = "wide"   // 2x1
	SizeTall   Size = "tall"   // 1x2
)

// Valid reports whether s is one of the four known sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeLarge, SizeMedium, SizeWide, SizeTall:
		return true
	}
	return false
}

// SizeClasses returns the grid span classes for a card of the given size.
// Medium and unrecognized sizes take the default single cell.
func SizeClasses(size Size) string {
	switch size {
	case SizeLarge:
		return "md:col-span-2 md:row-span-2"
	case SizeWide:
		return "md:col-span-2"
	case SizeTall:
		return "md:row-span-2"
	default:
		return ""
	}
}

// Project represents a portfolio project
type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	FullDescription string   `json:"full_description,omitempty" yaml:"full_description,omitempty"`
	Tags            []string `json:"tags" yaml:"tags"`
	Color           string   `json:"color" yaml:"color"`
	Icon            string   `json:"icon" yaml:"icon"`
	Size            Size     `json:"size" yaml:"size"`
	DemoURL         string   `json:"demo_url,omitempty" yaml:"demo_url,omitempty"`
	CodeURL         string   `json:"code_url,omitempty" yaml:"code_url,omitempty"`
	Image           string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Summary is the text shown on the detail page.
func (p Project) Summary() string {
	if p.FullDescription != "" {
		return p.FullDescription
	}
	return p.Description
}

// HasLinks reports whether the project has a demo or a code link.
func (p Project) HasLinks() bool {
	return p.DemoURL != "" || p.CodeURL != ""
}

// SizeClasses returns the grid span classes for this project's card.
func (p Project) SizeClasses() string {
	return SizeClasses(p.Size)
}

func (p Project) clone() Project {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
