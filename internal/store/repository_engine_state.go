// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-seal/internal/logger"
	"github.com/MKhiriev/go-chat-seal/models"
)

// engineStateRepository is the SQLite-backed implementation of [EngineStore].
// It handles the vault, identities, and sessions tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type engineStateRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewEngineStateRepository constructs an [EngineStore] backed by the provided
// database connection and logger.
func NewEngineStateRepository(db *DB, logger *logger.Logger) EngineStore {
	logger.Debug().Msg("creating engine state repository")
	return &engineStateRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// DatabaseSalt implements [EngineStore].
func (r *engineStateRepository) DatabaseSalt(ctx context.Context, uid string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("db_salt").
		From("vault").
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build salt query: %w", err)
	}

	var salt []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&salt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*engineStateRepository.DatabaseSalt").Msg("error querying salt")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return salt, nil
}

// SaveDatabaseSalt implements [EngineStore].
func (r *engineStateRepository) SaveDatabaseSalt(ctx context.Context, uid string, salt []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Insert("vault").
		Columns("uid", "db_salt", "created_at").
		Values(uid, salt, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build salt insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*engineStateRepository.SaveDatabaseSalt").Msg("error saving salt")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Identity implements [EngineStore].
func (r *engineStateRepository) Identity(ctx context.Context, uid string) (models.IdentityInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("identity_id", "device_id", "display_name", "created_at").
		From("identities").
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return models.IdentityInfo{}, fmt.Errorf("build identity query: %w", err)
	}

	var info models.IdentityInfo
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&info.UserID, &info.DeviceID, &info.DisplayName, &info.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IdentityInfo{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*engineStateRepository.Identity").Msg("error querying identity")
		return models.IdentityInfo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return info, nil
}

// SaveIdentity implements [EngineStore].
func (r *engineStateRepository) SaveIdentity(ctx context.Context, uid string, info models.IdentityInfo) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Insert("identities").
		Columns("uid", "identity_id", "device_id", "display_name", "created_at").
		Values(uid, info.UserID, info.DeviceID, info.DisplayName, info.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build identity insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*engineStateRepository.SaveIdentity").Msg("error saving identity")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Session implements [EngineStore].
func (r *engineStateRepository) Session(ctx context.Context, sessionID string) (StoredSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("session_id", "wrapped_key", "recipients", "created_at").
		From("sessions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return StoredSession{}, fmt.Errorf("build session query: %w", err)
	}

	var (
		s          StoredSession
		recipients string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.WrappedKey, &recipients, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*engineStateRepository.Session").Msg("error querying session")
		return StoredSession{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = json.Unmarshal([]byte(recipients), &s.Recipients); err != nil {
		return StoredSession{}, fmt.Errorf("decode session recipients: %w", err)
	}

	return s, nil
}

// SaveSession implements [EngineStore].
func (r *engineStateRepository) SaveSession(ctx context.Context, session StoredSession) error {
	log := logger.FromContext(ctx)

	recipients, err := json.Marshal(session.Recipients)
	if err != nil {
		return fmt.Errorf("encode session recipients: %w", err)
	}

	query, args, err := r.sb.
		Insert("sessions").
		Columns("session_id", "wrapped_key", "recipients", "created_at").
		Values(session.ID, session.WrappedKey, string(recipients), session.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*engineStateRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Close implements [EngineStore].
func (r *engineStateRepository) Close() error {
	return r.db.Close()
}
