package bundle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/minions-dev/create-minions-bundle/internal/branding"
)

// DefaultVersion is the version a new bundle starts at.
const DefaultVersion = "0.1.0"

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ProjectOptions is the raw project metadata gathered from flags, the bundle
// file and prompts. Empty fields take derived defaults in NewProject.
type ProjectOptions struct {
	Name             string
	Description      string
	Version          string
	AuthorName       string
	AuthorEmail      string
	AuthorURL        string
	Org              string
	License          string
	Keywords         []string
	AccentColor      string
	AccentHoverColor string
}

// ValidateName checks that a project name is usable as a directory and npm
// package name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

// Slug returns the project name without the bundle name prefix.
func Slug(name string) string {
	return strings.TrimPrefix(name, branding.NamePrefix())
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DefaultDescription returns the description used when none is given.
func DefaultDescription(slug string) string {
	return fmt.Sprintf("A curated Minions ecosystem bundle for %s", slug)
}

// DefaultKeywords returns the keywords used when none are given.
func DefaultKeywords(slug string) []string {
	return []string{slug, "bundle", "ai", "minions"}
}

// NewProject validates opts and derives the remaining metadata. now supplies
// the copyright year.
func NewProject(opts ProjectOptions, now time.Time) (Project, error) {
	if opts.Name == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	if err := ValidateName(opts.Name); err != nil {
		return Project{}, err
	}

	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return Project{}, fmt.Errorf("invalid version %q: %w", version, err)
	}

	slug := Slug(opts.Name)
	p := Project{
		Name:             opts.Name,
		Slug:             slug,
		Capitalized:      branding.DisplayName() + ": " + Capitalize(slug),
		Description:      firstNonEmpty(opts.Description, DefaultDescription(slug)),
		Version:          version,
		AuthorName:       firstNonEmpty(opts.AuthorName, branding.DefaultAuthor()),
		AuthorEmail:      opts.AuthorEmail,
		AuthorURL:        opts.AuthorURL,
		GitHubOrg:        firstNonEmpty(opts.Org, branding.DefaultOrg()),
		License:          firstNonEmpty(opts.License, branding.DefaultLicense()),
		Keywords:         opts.Keywords,
		Year:             strconv.Itoa(now.Year()),
		AccentColor:      firstNonEmpty(opts.AccentColor, branding.AccentColor()),
		AccentHoverColor: firstNonEmpty(opts.AccentHoverColor, branding.AccentHoverColor()),
	}
	if len(p.Keywords) == 0 {
		p.Keywords = DefaultKeywords(slug)
	}
	p.GitHubRepo = p.GitHubOrg + "/" + p.Name
	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
