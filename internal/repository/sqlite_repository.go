package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"nammai/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(ctx context.Context, session *model.Session) error {
	query := "INSERT INTO sessions (id, title, language, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, session.ID, session.Title, session.Language, session.CreatedAt, session.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := "SELECT id, title, language, created_at, updated_at FROM sessions WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, sessionID)
	var session model.Session
	err := row.Scan(&session.ID, &session.Title, &session.Language, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sqliteRepository) GetSessions(ctx context.Context) ([]*model.Session, error) {
	query := "SELECT id, title, language, created_at, updated_at FROM sessions ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		var session model.Session
		if err := rows.Scan(&session.ID, &session.Title, &session.Language, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

func (r *sqliteRepository) UpdateSessionTitle(ctx context.Context, sessionID, newTitle string) error {
	query := "UPDATE sessions SET title = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, newTitle, time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sqliteRepository) UpdateSessionLanguage(ctx context.Context, sessionID string, lang model.Language) error {
	query := "UPDATE sessions SET language = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, lang, time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// AppendMessage inserts a message with the next per-session sequence number
// and bumps the session's updated_at inside one transaction.
func (r *sqliteRepository) AppendMessage(ctx context.Context, sessionID string, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	seqQuery := "SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?"
	if err := tx.QueryRowContext(ctx, seqQuery, sessionID).Scan(&seq); err != nil {
		return fmt.Errorf("could not assign message seq: %w", err)
	}

	insertQuery := `
		INSERT INTO messages (id, session_id, seq, sender, text, is_typing, image_url, is_downloadable, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		message.ID,
		sessionID,
		seq,
		message.Sender,
		message.Text,
		message.IsTyping,
		message.ImageURL,
		message.IsDownloadable,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	message.Seq = seq

	updateQuery := "UPDATE sessions SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, time.Now().UTC(), sessionID); err != nil {
		return fmt.Errorf("could not update session timestamp: %w", err)
	}

	return tx.Commit()
}

// ReplaceLastMessage applies a partial patch to the highest-seq message of a
// session. Earlier messages are immutable.
func (r *sqliteRepository) ReplaceLastMessage(ctx context.Context, sessionID string, patch *MessagePatch) error {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if patch.Text != nil {
		setClauses = append(setClauses, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.IsTyping != nil {
		setClauses = append(setClauses, "is_typing = ?")
		args = append(args, *patch.IsTyping)
	}
	if patch.ImageURL != nil {
		setClauses = append(setClauses, "image_url = ?")
		args = append(args, *patch.ImageURL)
	}
	if patch.IsDownloadable != nil {
		setClauses = append(setClauses, "is_downloadable = ?")
		args = append(args, *patch.IsDownloadable)
	}
	if len(setClauses) == 0 {
		return nil
	}

	query := "UPDATE messages SET " + strings.Join(setClauses, ", ") + `
		WHERE session_id = ?
		AND seq = (SELECT MAX(seq) FROM messages WHERE session_id = ?)
	`
	args = append(args, sessionID, sessionID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sqliteRepository) GetMessages(ctx context.Context, sessionID string) ([]model.Message, error) {
	query := `
		SELECT id, seq, sender, text, is_typing, image_url, is_downloadable, timestamp
		FROM messages
		WHERE session_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func (r *sqliteRepository) GetLastMessage(ctx context.Context, sessionID string) (*model.Message, error) {
	query := `
		SELECT id, seq, sender, text, is_typing, image_url, is_downloadable, timestamp
		FROM messages
		WHERE session_id = ?
		ORDER BY seq DESC LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query, sessionID)
	msg, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (r *sqliteRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages WHERE session_id = ?", sessionID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*model.Message, error) {
	var msg model.Message
	var imageURL sql.NullString
	if err := row.Scan(&msg.ID, &msg.Seq, &msg.Sender, &msg.Text, &msg.IsTyping, &imageURL, &msg.IsDownloadable, &msg.Timestamp); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		msg.ImageURL = &imageURL.String
	}
	return &msg, nil
}

func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
