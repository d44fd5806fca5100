// Package catalog is the embedded catalogd SDK. It connects straight to the
// backing Redis store and exposes the catalog operations without running the
// HTTP server.
package catalog
