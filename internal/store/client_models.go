package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDuplicateModelName is returned when a model with the same canonical name exists.
var ErrDuplicateModelName = errors.New("client model name already exists")

const clientModelColumns = "id, name, launches_folder, created_at, updated_at"

// CreateClientModel inserts a new model. The name is canonicalised before it
// is stored and must be unique ignoring case.
func (s *Store) CreateClientModel(ctx context.Context, name, launchesFolder string) (*ClientModel, error) {
	canonical := CanonicalName(name)
	if canonical == "" {
		return nil, errors.New("client model name is required")
	}
	timestamp := formatTime(time.Now())

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO client_models (name, name_key, launches_folder, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)`,
		canonical,
		NameKey(canonical),
		nullableString(strings.TrimSpace(launchesFolder)),
		timestamp,
		timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModelName, canonical)
		}
		return nil, fmt.Errorf("insert client model: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetClientModel(ctx, id)
}

// GetClientModel fetches a model by identifier.
func (s *Store) GetClientModel(ctx context.Context, id int64) (*ClientModel, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+clientModelColumns+` FROM client_models WHERE id = ?`, id)
	model, err := scanClientModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get client model: %w", err)
	}
	return model, nil
}

// FindClientModelByName looks a model up by canonical name, ignoring case.
func (s *Store) FindClientModelByName(ctx context.Context, name string) (*ClientModel, error) {
	row := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT `+clientModelColumns+` FROM client_models WHERE name_key = ?`,
		NameKey(name),
	)
	model, err := scanClientModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client model: %w", err)
	}
	return model, nil
}

// ListClientModels returns every model ordered by name.
func (s *Store) ListClientModels(ctx context.Context) ([]*ClientModel, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT `+clientModelColumns+` FROM client_models ORDER BY name_key, id`)
	if err != nil {
		return nil, fmt.Errorf("list client models: %w", err)
	}
	defer rows.Close()

	var models []*ClientModel
	for rows.Next() {
		model, err := scanClientModel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client model: %w", err)
		}
		models = append(models, model)
	}
	return models, rows.Err()
}

// SetLaunchesFolder replaces the launches folder reference of a model. An
// empty reference clears it.
func (s *Store) SetLaunchesFolder(ctx context.Context, id int64, launchesFolder string) error {
	res, err := s.execWithRetry(
		ctx,
		`UPDATE client_models SET launches_folder = ?, updated_at = ? WHERE id = ?`,
		nullableString(strings.TrimSpace(launchesFolder)),
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update launches folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("client model %d not found", id)
	}
	return nil
}

func scanClientModel(scanner interface{ Scan(dest ...any) error }) (*ClientModel, error) {
	var (
		id             int64
		name           string
		launchesFolder sql.NullString
		createdRaw     sql.NullString
		updatedRaw     sql.NullString
	)
	if err := scanner.Scan(&id, &name, &launchesFolder, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	return &ClientModel{
		ID:             id,
		Name:           name,
		LaunchesFolder: launchesFolder.String,
		CreatedAt:      parseTime(createdRaw),
		UpdatedAt:      parseTime(updatedRaw),
	}, nil
}
