// Package maptoposter turns a place description into the inputs of a map
// poster: a geocoded anchor Location and a named color Theme.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, slog/).
package maptoposter
