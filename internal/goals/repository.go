package goals

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ownerID int64, text string) (int64, error)
	ByOwner(ownerID int64) ([]Goal, error)
	MarkDone(ownerID, goalID int64) (int64, error)
	Delete(ownerID, goalID int64) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ownerID int64, text string) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO goals (user_id, text, is_done, created_at) VALUES (?, ?, 0, ?)`,
		ownerID, text, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (r *repository) ByOwner(ownerID int64) ([]Goal, error) {
	var rows []struct {
		ID        int64  `db:"id"`
		OwnerID   int64  `db:"user_id"`
		Text      string `db:"text"`
		IsDone    bool   `db:"is_done"`
		CreatedAt string `db:"created_at"`
	}
	err := r.db.Select(&rows,
		`SELECT id, user_id, text, is_done, created_at FROM goals WHERE user_id = ? ORDER BY id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	out := make([]Goal, 0, len(rows))
	for _, row := range rows {
		created, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
		out = append(out, Goal{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			Text:      row.Text,
			IsDone:    row.IsDone,
			CreatedAt: created,
		})
	}
	return out, nil
}

// MarkDone sets is_done on the goal if it belongs to ownerID. The affected
// count is 0 both for a missing id and for someone else's goal, so callers
// cannot tell the two apart.
func (r *repository) MarkDone(ownerID, goalID int64) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE goals SET is_done = 1 WHERE id = ? AND user_id = ?`,
		goalID, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark goal done: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) Delete(ownerID, goalID int64) (int64, error) {
	res, err := r.db.Exec(
		`DELETE FROM goals WHERE id = ? AND user_id = ?`,
		goalID, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete goal: %w", err)
	}
	return res.RowsAffected()
}
