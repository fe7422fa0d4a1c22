package store

import "context"

// SetSchemaVersion overwrites the recorded schema version.
func SetSchemaVersion(s *Store, ctx context.Context, version int) error {
	_, err := s.db.ExecContext(ctx, "UPDATE schema_version SET version = ?", version)
	return err
}
