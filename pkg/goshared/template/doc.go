/*
Package template provides variable expansion for strings.

# Overview

Three placeholder styles are supported:

  - ${var} - brace style, used for configuration values
  - $var - dollar style, matched up to a word boundary
  - {var} - format style, used for representation templates

Brace and dollar styles are enabled by default. Format style is enabled with
WithFormatStyle or by constructing the expander with NewFormatter.

# Basic Usage

	url := template.Expand("https://${host}:$port/api", map[string]any{
	    "host": "api.example.com",
	    "port": 8080,
	})

	s, err := template.Format("<{obj_name} {attributes}>", map[string]any{
	    "obj_name":   "Server",
	    "attributes": "host='localhost'",
	})
	// s: "<Server host='localhost'>"

# Missing Variables

By default, missing variables are kept as-is. Configure with
WithMissingAction(MissingEmpty) or WithMissingAction(MissingError). The
formatter returned by NewFormatter always starts with MissingError.

# Format Style

Format style mirrors the familiar "{name}" convention: "{{" and "}}" produce
literal braces, while an unclosed "{" or a lone "}" is a *SyntaxError.
Substituted values are written verbatim, so a value containing braces is never
interpreted as a placeholder.

# Thread Safety

Expander is safe for concurrent use after construction.
*/
package template
