// Package sitefile reads site definition documents: YAML (or JSON) files that
// carry the same fields as the interactive form plus the template and an
// optional palette. Presence and type checks run against a kin-openapi schema
// before the document is decoded.
package sitefile
