// Package ingest reads source documents into page-level segments with
// provenance metadata. PDFs are extracted page by page so downstream
// splitting can carry true page numbers through; plain-text files become a
// single segment with an unknown page.
package ingest
