// Package bookmeta looks up book metadata on third-party bookstore sites.
// A provider turns a free-text query into a list of normalized metadata
// records scraped from the store's search and item pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package bookmeta
