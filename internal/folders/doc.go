// Package folders resolves Drive folder references and prepares the
// destination folder and template copy for a caption bank.
//
// Remote access goes through the Store interface so the resolver and cloner
// can be exercised against in-memory fakes. Find-or-create is best effort:
// two concurrent runs for the same parent may both create a folder.
package folders
