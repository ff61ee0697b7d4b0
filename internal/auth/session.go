package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = AccessTokenExpirationTime

// KV is the slice of the redis client the session store needs.
type KV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AdminSession is the per-login state kept server-side, keyed by the auth
// token. ForceChangePassword gates every route except the password change
// until the user rotates their initial password.
type AdminSession struct {
	ExpiresAt           time.Time `json:"expiresAt"`
	UserId              string    `json:"userId"`
	Username            string    `json:"username"`
	CompanyId           string    `json:"companyId"`
	ForceChangePassword bool      `json:"forceChangePassword"`
}

func (s AdminSession) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *AdminSession) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}

// Expired reports whether the session has passed its expiry.
func (s AdminSession) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}

// SessionStore keeps admin sessions in redis.
type SessionStore struct {
	kv KV
}

func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Init stores a fresh session under the given token.
func (st *SessionStore) Init(ctx context.Context, token string, session AdminSession) error {
	session.ExpiresAt = time.Now().Add(sessionTTL)
	return st.kv.Set(ctx, sessionKey(token), session, sessionTTL).Err()
}

// Get loads the session for a token. A missing or expired session returns
// redis.Nil.
func (st *SessionStore) Get(ctx context.Context, token string) (AdminSession, error) {
	value, err := st.kv.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return AdminSession{}, err
	}

	var session AdminSession
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return AdminSession{}, err
	}
	if session.Expired() {
		return AdminSession{}, redis.Nil
	}

	return session, nil
}

// SetCompany records the company id on an existing session.
func (st *SessionStore) SetCompany(ctx context.Context, token, companyId string) error {
	session, err := st.Get(ctx, token)
	if err != nil {
		return err
	}

	session.CompanyId = companyId
	return st.kv.Set(ctx, sessionKey(token), session, time.Until(session.ExpiresAt)).Err()
}

// ClearForceChangePassword lifts the password rotation gate after a
// successful change.
func (st *SessionStore) ClearForceChangePassword(ctx context.Context, token string) error {
	session, err := st.Get(ctx, token)
	if err != nil {
		return err
	}

	session.ForceChangePassword = false
	return st.kv.Set(ctx, sessionKey(token), session, time.Until(session.ExpiresAt)).Err()
}

// Clear drops the session on logout.
func (st *SessionStore) Clear(ctx context.Context, token string) error {
	return st.kv.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return "session:" + token
}
