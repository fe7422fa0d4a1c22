// Package workbook applies the caption bank layout to a copied spreadsheet.
//
// It duplicates the FREE/PAID source tab, writes tab headers, builds the
// MasterSheet aggregation formulas, and protects the configured cells. Every
// helper issues at most one call against Store, so each step maps to a single
// remote batch request. Formula text is assembled here as plain strings and
// is evaluated only by the remote spreadsheet engine.
package workbook
