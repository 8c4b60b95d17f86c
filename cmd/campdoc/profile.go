package main

import (
	"slices"

	"github.com/campstation/campdoc"
	"github.com/campstation/campdoc/internal/config"
)

// applyProfileConfig overlays non-empty config values on p.
func applyProfileConfig(p *campdoc.Profile, pc config.ProfileConfig) {
	setString(&p.InputPath, pc.Input)
	setString(&p.OutputPath, pc.Output)
	setString(&p.Style, pc.Style)

	m := &p.Metadata
	setString(&m.Title, pc.Metadata.Title)
	setString(&m.Heading, pc.Metadata.Heading)
	setString(&m.Date, pc.Metadata.Date)
	setString(&m.Version, pc.Metadata.Version)
	setString(&m.Project, pc.Metadata.Project)
	setString(&m.BaseURL, pc.Metadata.BaseURL)
	setString(&m.Lang, pc.Metadata.Lang)
	if pc.Metadata.Footer != nil {
		m.Footer = slices.Clone(pc.Metadata.Footer)
	}

	f := &p.Features
	setBool(&f.Tables, pc.Features.Tables)
	setBool(&f.FencedCode, pc.Features.FencedCode)
	setBool(&f.HeaderIDs, pc.Features.HeaderIDs)
	setBool(&f.TOC, pc.Features.TOC)
	setBool(&f.Highlight, pc.Features.Highlight)
	setBool(&f.LineNumbers, pc.Features.LineNumbers)
	setBool(&f.DecorateEndpoints, pc.Features.DecorateEndpoints)
	setBool(&f.RawHTML, pc.Features.RawHTML)
	setBool(&f.Sanitize, pc.Features.Sanitize)

	t := pc.TOC
	if t.Title == nil && t.MinDepth == 0 && t.MaxDepth == 0 {
		return
	}
	toc := campdoc.DefaultTOC()
	if p.TOC != nil {
		cp := *p.TOC
		toc = &cp
	}
	if t.Title != nil {
		toc.Title = *t.Title
	}
	if t.MinDepth != 0 {
		toc.MinDepth = t.MinDepth
	}
	if t.MaxDepth != 0 {
		toc.MaxDepth = t.MaxDepth
	}
	p.TOC = toc
}

// applyFlags overlays command-line flags on p. Flags win over config.
func applyFlags(p *campdoc.Profile, flags *convertFlags) {
	setString(&p.InputPath, flags.paths.input)
	setString(&p.OutputPath, flags.paths.output)
	setString(&p.Style, flags.features.style)

	if flags.features.sanitize {
		p.Features.Sanitize = true
	}
	if flags.features.noTOC {
		p.Features.TOC = false
	}
	if flags.features.noHighlight {
		p.Features.Highlight = false
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
