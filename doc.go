// Package campdoc converts Markdown documents into self-contained,
// print-friendly HTML pages.
//
// # Quick Start
//
// Create a converter and convert markdown with one of the built-in profiles:
//
//	conv, err := campdoc.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	profile := campdoc.APIProfile()
//	result, err := conv.Convert(ctx, profile.Input(markdown))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(profile.OutputPath, result.HTML, 0644)
//
// The page carries its CSS and script inline and has a print button; PDF
// output is left to the browser's print dialog.
//
// # Conversion Pipeline
//
//  1. Markdown to HTML fragment via Goldmark (tables, fenced code,
//     heading ids, chroma highlighting), selected by Features
//  2. Optional sanitization (bluemonday)
//  3. Optional table of contents, placed at a "[TOC]" line or at the top
//  4. Optional endpoint badges for "GET /api/v1/..." and "권한: ..." list items
//  5. Page assembly from the template set: header metadata, footer, CSS
//     and script
//
// # Profiles
//
// ReportProfile and APIProfile reproduce the two documents this package
// was written for. Each fixes an input path, an output path, page metadata,
// features, and the style and template set of the same name. Profile.Input
// builds the Input for a Markdown string; fields can be changed before
// calling Convert.
//
// # Assets
//
// Styles and template sets are embedded. WithAssetPath adds a directory
// that is searched first:
//
//	styles/{name}.css
//	templates/{name}/page.html
//	templates/{name}/script.js   (optional)
//
// page.html is an html/template receiving Lang, Title, Heading, Date,
// Version, Project, BaseURL, Footer, CSS, Content and Script.
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be matched with errors.Is:
//
//	if errors.Is(err, campdoc.ErrStyleNotFound) { ... }
package campdoc
