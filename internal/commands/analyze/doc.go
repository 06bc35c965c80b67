// Package analyze implements the compatscan analyze command: it discovers
// Steam libraries, scans their compatdata directories, resolves application
// names through the catalog, and renders the report.
package analyze
