package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// PostgresCollection stores documents as JSONB rows in the documents table.
// Identifiers are UUIDs assigned on insert and exposed through domain.IDField.
type PostgresCollection struct {
	pool *pgxpool.Pool
	name string
}

// NewPostgresCollection binds a named collection to the pool.
func NewPostgresCollection(pool *pgxpool.Pool, name string) *PostgresCollection {
	return &PostgresCollection{pool: pool, name: name}
}

func (p *PostgresCollection) List(ctx context.Context) ([]domain.Record, error) {
	const query = `
        SELECT id::text, body
        FROM documents WHERE collection=$1
        ORDER BY seq`

	rows, err := p.pool.Query(ctx, query, p.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.name, err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", p.name, err)
		}
		doc, err := domain.DecodeDocument(body)
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", p.name, id, err)
		}
		doc[domain.IDField] = id
		records = append(records, domain.Record{ID: id, Document: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", p.name, err)
	}
	return records, nil
}

func (p *PostgresCollection) Insert(ctx context.Context, doc domain.Document) (string, error) {
	const query = `
        INSERT INTO documents (collection, id, body)
        VALUES ($1, $2, $3)`

	body, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", p.name, err)
	}
	id := uuid.NewString()
	if _, err := p.pool.Exec(ctx, query, p.name, id, string(body)); err != nil {
		return "", fmt.Errorf("insert %s: %w", p.name, err)
	}
	return id, nil
}

// Replace overwrites the document. Unknown ids match no row and succeed silently.
func (p *PostgresCollection) Replace(ctx context.Context, id string, doc domain.Document) error {
	const query = `
        UPDATE documents SET body=$3, updated_at=NOW()
        WHERE collection=$1 AND id=$2`

	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	body, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.name, err)
	}
	if _, err := p.pool.Exec(ctx, query, p.name, id, string(body)); err != nil {
		return fmt.Errorf("update %s/%s: %w", p.name, id, err)
	}
	return nil
}

// Remove deletes the document. Unknown ids succeed silently.
func (p *PostgresCollection) Remove(ctx context.Context, id string) error {
	const query = `DELETE FROM documents WHERE collection=$1 AND id=$2`

	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := p.pool.Exec(ctx, query, p.name, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", p.name, id, err)
	}
	return nil
}

func (p *PostgresCollection) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
