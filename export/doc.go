// Package export writes generated Q&A pairs to spreadsheet workbooks:
// fixed Question / Answer / Source Document(s) / Page Number(s) columns,
// with the taxonomy columns appended when enabled.
package export
