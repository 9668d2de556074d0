// Package themejson flattens a WordPress theme.json document into the CSS custom
// properties WordPress generates from it.
//
// Each category reads one sub-tree of "settings" and names its tokens
// wp--{label}{prefix}--{path}:
//
//	settings.color.palette[{slug: "primary", color: "#000"}] → wp--preset--color--primary: #000
//	settings.custom.font.size.small = "12px"                  → wp--custom--font--size--small: 12px
//
// Preset records (palette, gradient, font family and size entries) are recognised by
// their fields and named by slug. Everything else is walked recursively with keys
// converted to kebab-case by Mangle.
package themejson
