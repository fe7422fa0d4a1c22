// Package gworkspace implements the folder and spreadsheet boundaries on top
// of the Google Drive v3 and Sheets v4 APIs.
//
// A Client is built per caller from their OAuth access token; the token is
// passed through unchanged. Responses are mapped into the folders and
// workbook types here and shape mismatches are reported as errors.
package gworkspace
