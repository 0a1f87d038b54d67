// Package uedocset generates a Dash compatible docset from an Unreal Engine
// HTML documentation archive. It walks the extracted tree of cross-linked
// pages, collects the API symbols each page documents, rewrites pages in
// place with table of contents anchors, and persists the collected entries
// into a SQLite search index alongside an Info.plist manifest.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package uedocset
