package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
)

// EncodeUID produces the reversible identity half of a reset link: a
// url-safe encoding of the numeric user id. It is lookup data, not a secret.
func EncodeUID(userID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(userID, 10)))
}

func DecodeUID(encoded string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, fmt.Errorf("decode uid: %w", err)
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse uid: %w", err)
	}
	return id, nil
}

// ResetTokenGenerator issues single-use password reset tokens. A token is an
// HMAC over the user's id, current password hash and last login, plus an
// issue timestamp. Changing the password (or logging in) changes the bound
// state, so a consumed or superseded token no longer verifies; tokens also
// lapse after TTL.
type ResetTokenGenerator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokenGenerator(secret string, ttl time.Duration) *ResetTokenGenerator {
	return &ResetTokenGenerator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (g *ResetTokenGenerator) MakeToken(u *userDatamodel.User) string {
	ts := g.now().Unix()
	return g.tokenWithTimestamp(u, ts)
}

func (g *ResetTokenGenerator) CheckToken(u *userDatamodel.User, token string) bool {
	if u == nil || token == "" {
		return false
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return false
	}

	ts, err := strconv.ParseInt(parts[0], 36, 64)
	if err != nil {
		return false
	}

	expected := g.tokenWithTimestamp(u, ts)
	if !hmac.Equal([]byte(expected), []byte(token)) {
		return false
	}

	if g.now().Sub(time.Unix(ts, 0)) > g.ttl {
		return false
	}

	return true
}

func (g *ResetTokenGenerator) tokenWithTimestamp(u *userDatamodel.User, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%d|%s|%s|%d", u.ID, u.PasswordHash, lastLoginStamp(u), ts)
	digest := hex.EncodeToString(mac.Sum(nil))
	return strconv.FormatInt(ts, 36) + "-" + digest
}

func lastLoginStamp(u *userDatamodel.User) string {
	if u.LastLogin == nil {
		return ""
	}
	return strconv.FormatInt(u.LastLogin.Unix(), 10)
}
