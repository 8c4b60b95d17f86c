// Package pipeline implements the Markdown-to-HTML page pipeline.
//
// Stages, in the order the converter runs them:
//   - line ending normalization
//   - Markdown to HTML fragment via Goldmark, configured by RenderOptions
//   - optional relative link rebasing (when the page is written elsewhere)
//   - optional sanitization of the fragment (bluemonday)
//   - optional table of contents generation and injection
//   - optional endpoint decoration of list items (method and permission badges)
//   - page assembly from an html/template shell with inline CSS and script
//
// Every stage is a pure string transformation; reading and writing files is
// left to the caller.
package pipeline
