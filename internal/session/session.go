package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is the per-connection state: who the caller is plus the single
// attempt they currently have open. ActiveAttemptID 0 means none.
type Session struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	Role            string `json:"role"`
	ActiveAttemptID uint   `json:"active_attempt_id"`
}

type Store interface {
	Create(ctx context.Context, s *Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	BindAttempt(ctx context.Context, token string, attemptID uint) error
	ClearAttempt(ctx context.Context, token string) error
}

type RedisStore struct {
	db  *redis.Client
	ttl time.Duration
}

func NewRedisStore(db *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{db: db, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (r *RedisStore) Create(ctx context.Context, s *Session) (string, error) {
	token := uuid.NewString()
	key := sessionKey(token)
	err := r.db.HSet(ctx, key, map[string]interface{}{
		"userId":   s.UserID,
		"username": s.Username,
		"role":     s.Role,
		"attempt":  s.ActiveAttemptID,
	}).Err()
	if err != nil {
		return "", err
	}
	if err := r.db.Expire(ctx, key, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	fields, err := r.db.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	userID, _ := strconv.ParseUint(fields["userId"], 10, 32)
	attemptID, _ := strconv.ParseUint(fields["attempt"], 10, 32)
	return &Session{
		UserID:          uint(userID),
		Username:        fields["username"],
		Role:            fields["role"],
		ActiveAttemptID: uint(attemptID),
	}, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.db.Del(ctx, sessionKey(token)).Err()
}

func (r *RedisStore) BindAttempt(ctx context.Context, token string, attemptID uint) error {
	return r.db.HSet(ctx, sessionKey(token), "attempt", attemptID).Err()
}

func (r *RedisStore) ClearAttempt(ctx context.Context, token string) error {
	return r.db.HSet(ctx, sessionKey(token), "attempt", 0).Err()
}
