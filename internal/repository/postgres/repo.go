package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/model"
)

var ErrMemberNotFound = model.ErrMemberNotFound

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return NewWithDB(conn)
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) IsChannelMember(ctx context.Context, channel, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("channel_members").
		Where(sq.And{
			sq.Eq{"channel": channel},
			sq.Eq{"user_id": userID},
			sq.Eq{"left_at": nil},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isMember bool
	err = r.connection.GetContext(ctx, &isMember, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check channel membership: %v", err)
	}

	return isMember, nil
}

func (r *Repository) GetMemberInfo(ctx context.Context, channel, userID string) (*model.MemberInfo, error) {
	query, args, err := sq.
		Select("u.id AS user_id", "u.nickname", "u.avatar_url").
		From("channel_members cm").
		Join("users u ON u.id = cm.user_id").
		Where(sq.And{
			sq.Eq{"cm.channel": channel},
			sq.Eq{"cm.user_id": userID},
			sq.Eq{"cm.left_at": nil},
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var info model.MemberInfo
	err = r.connection.GetContext(ctx, &info, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member info: %v", err)
	}

	return &info, nil
}

func (r *Repository) AddChannelMembers(ctx context.Context, channel string, members []model.ChannelMember) error {
	if len(members) == 0 {
		return nil
	}

	users := sq.Insert("users").
		Columns("id", "nickname").
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname").
		PlaceholderFormat(sq.Dollar)

	query := sq.Insert("channel_members").
		Columns("channel", "user_id").
		Suffix("ON CONFLICT (channel, user_id) DO UPDATE SET left_at = NULL").
		PlaceholderFormat(sq.Dollar)

	for _, member := range members {
		users = users.Values(member.UserID, member.Nickname)
		query = query.Values(channel, member.UserID)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %v", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, q := range []sq.InsertBuilder{users, query} {
		sqlStr, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err = tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("failed to add channel members: %v", err)
		}
	}

	return tx.Commit()
}
