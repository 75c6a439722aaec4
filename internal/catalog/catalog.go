// Package catalog holds the read-only list of portfolio projects.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidCatalog is wrapped by every validation failure from New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Project ids appear in URL paths and CSS view-transition names.
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Catalog is an immutable, ordered list of projects.
type Catalog struct {
	projects []Project
}

// New validates projects and returns a catalog holding a private copy of them.
func New(projects []Project) (*Catalog, error) {
	seen := make(map[string]struct{}, len(projects))
	owned := make([]Project, 0, len(projects))
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: project %d has no id", ErrInvalidCatalog, i)
		}
		if !idPattern.MatchString(p.ID) {
			return nil, fmt.Errorf("%w: project id %q is not a lowercase slug", ErrInvalidCatalog, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %q", ErrInvalidCatalog, p.ID)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("%w: project %q has no title", ErrInvalidCatalog, p.ID)
		}
		if !p.Size.Valid() {
			return nil, fmt.Errorf("%w: project %q has unknown size %q", ErrInvalidCatalog, p.ID, p.Size)
		}
		seen[p.ID] = struct{}{}
		owned = append(owned, p.clone())
	}
	return &Catalog{projects: owned}, nil
}

// All returns every project in source order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns the project with the given id.
func (c *Catalog) Lookup(id string) (Project, bool) {
	for i := range c.projects {
		if c.projects[i].ID == id {
			return c.projects[i].clone(), true
		}
	}
	return Project{}, false
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}
