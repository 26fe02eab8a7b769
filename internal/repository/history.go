package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// HistoryRepository is the append-only store of finished games.
type HistoryRepository interface {
	Insert(ctx context.Context, record *entity.GameRecord) error
	ListAll(ctx context.Context) ([]entity.GameRecord, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type historyRepository struct {
	conn *sql.DB
}

func NewHistoryRepository(conn *sql.DB) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

// Insert - appends a finished game and fills in its store-assigned ID. The
// move history is stored as a JSON array of {row, col, player} triples.
func (that *historyRepository) Insert(ctx context.Context, record *entity.GameRecord) error {
	movesJSON, err := json.Marshal(record.Moves)
	if err != nil {
		return fmt.Errorf("could not marshal move history: %w", err)
	}

	query := `INSERT INTO games (mode, winner, move_history, date) VALUES (?, ?, ?, ?)`

	result, err := that.conn.ExecContext(ctx, query, record.Mode, record.Winner, string(movesJSON), record.PlayedAt)
	if err != nil {
		return fmt.Errorf("can't save game record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't read inserted record id: %w", err)
	}

	record.ID = id

	return nil
}

// ListAll - returns all records, most recent first.
func (that *historyRepository) ListAll(ctx context.Context) ([]entity.GameRecord, error) {
	query := `SELECT id, mode, winner, move_history, date FROM games ORDER BY id DESC`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list game records: %w", err)
	}
	defer rows.Close()

	var records []entity.GameRecord

	for rows.Next() {
		var record entity.GameRecord
		var movesJSON string

		if err = rows.Scan(&record.ID, &record.Mode, &record.Winner, &movesJSON, &record.PlayedAt); err != nil {
			return nil, fmt.Errorf("can't scan game record: %w", err)
		}

		if err = json.Unmarshal([]byte(movesJSON), &record.Moves); err != nil {
			return nil, fmt.Errorf("malformed move history for record %d: %w", record.ID, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read game records: %w", err)
	}

	return records, nil
}

// DeleteByIDs - removes the records with the given ids in one statement.
func (that *historyRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf("DELETE FROM games WHERE id IN (%s)", placeholders) //nolint: gosec // only placeholders are interpolated

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	if _, err := that.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("can't delete game records: %w", err)
	}

	return nil
}
