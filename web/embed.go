// Package web provides the embedded static files for the frontend.
package web

import "embed"

// StaticFS embeds the single-page frontend. The application is served
// from the API origin so the stored session token never crosses origins.
//
//go:embed static
var StaticFS embed.FS
