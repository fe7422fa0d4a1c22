// Package store persists client models, sheet links, and sessions in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// handful of create/read calls the HTTP server and provisioning flow need.
// Sheet links are append-only: provisioning inserts one row per successful run
// and nothing in this package updates or deletes them.
//
// Schema changes bump schemaVersion in schema.go; operators recreate the
// database to adopt the new schema.
package store
