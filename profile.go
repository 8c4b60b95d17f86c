package campdoc

import (
	"fmt"
	"slices"
)

// Built-in profile names.
const (
	ProfileReport = "report"
	ProfileAPI    = "api"
)

// Profile bundles everything needed to convert one document: where to read
// and write, how the page looks, and which features are on.
type Profile struct {
	Name        string
	Description string
	InputPath   string // Markdown file, relative to the working directory
	OutputPath  string // HTML file, relative to the working directory
	TemplateSet string
	Style       string
	Metadata    Metadata
	Features    Features
	TOC         *TOC
}

// Input builds a conversion Input for markdown using the profile's settings.
func (p Profile) Input(markdown string) Input {
	meta := p.Metadata
	meta.Footer = slices.Clone(p.Metadata.Footer)

	var toc *TOC
	if p.TOC != nil {
		t := *p.TOC
		toc = &t
	}

	return Input{
		Markdown:    markdown,
		Metadata:    meta,
		Features:    p.Features,
		TOC:         toc,
		TemplateSet: p.TemplateSet,
		Style:       p.Style,
	}
}

// ReportProfile returns the project report profile.
func ReportProfile() Profile {
	return Profile{
		Name:        ProfileReport,
		Description: "project report with code line numbers",
		InputPath:   "CampStation-Backend-Report.md",
		OutputPath:  "CampStation-Backend-Report.html",
		TemplateSet: ProfileReport,
		Style:       ProfileReport,
		Metadata: Metadata{
			Title:   "CampStation Backend Project Report",
			Heading: "🏕️ CampStation Backend Project Report",
			Date:    "2025-11-16",
			Version: "0.0.1-SNAPSHOT",
			Project: "CampStation Backend API Server",
			Lang:    DefaultLang,
			Footer: []string{
				"📊 CampStation Backend Project Analysis Report",
				"Generated by Claude AI Assistant | © 2025",
			},
		},
		Features: Features{
			Tables:      true,
			FencedCode:  true,
			HeaderIDs:   true,
			Highlight:   true,
			LineNumbers: true,
			RawHTML:     true,
		},
	}
}

// APIProfile returns the API endpoint documentation profile.
func APIProfile() Profile {
	return Profile{
		Name:        ProfileAPI,
		Description: "API endpoint documentation with TOC and endpoint badges",
		InputPath:   "API-Endpoints-Documentation.md",
		OutputPath:  "API-Endpoints-Documentation.html",
		TemplateSet: ProfileAPI,
		Style:       ProfileAPI,
		Metadata: Metadata{
			Title:   "CampStation Backend API Documentation",
			Heading: "🏕️ CampStation Backend API",
			Date:    "2025-11-16",
			Version: "v1",
			BaseURL: "http://localhost:8080/api/v1",
			Lang:    DefaultLang,
			Footer: []string{
				"📊 CampStation Backend API Documentation",
				"Generated by Claude AI Assistant | © 2025",
				"Total Controllers: 17 | Total Endpoints: 100+",
			},
		},
		Features: Features{
			Tables:            true,
			FencedCode:        true,
			HeaderIDs:         true,
			TOC:               true,
			Highlight:         true,
			DecorateEndpoints: true,
			RawHTML:           true,
		},
		TOC: DefaultTOC(),
	}
}

// Profiles returns the built-in profiles in a stable order.
func Profiles() []Profile {
	return []Profile{ReportProfile(), APIProfile()}
}

// ProfileNames returns the built-in profile names, sorted.
func ProfileNames() []string {
	return []string{ProfileAPI, ProfileReport}
}

// LookupProfile returns the built-in profile with the given name.
func LookupProfile(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}
