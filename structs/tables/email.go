package tables

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerification proves control of an account's email address. The unique
// constraint on user_id keeps it to at most one live token per account.
type EmailVerification struct {
	tableName struct{}  `bun:"table:email_verifications,alias:ev"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,notnull,unique,type:uuid"`
	Token     uuid.UUID `json:"token" bun:"token,notnull,unique,type:uuid,default:gen_random_uuid()"`
	Verified  bool      `json:"verified" bun:"verified,notnull,default:false"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:current_timestamp"`
	User      *User     `json:"-" bun:"rel:belongs-to,join:user_id=id,on_delete:cascade"`
}

// LoginCodeWindow is how long a login code stays valid after creation.
// A code aged exactly the window is already expired.
const LoginCodeWindow = 10 * time.Minute

// LoginCode is the one-time second factor emailed on every login. History is
// kept; rows are never updated except to flip Used.
type LoginCode struct {
	tableName struct{}  `bun:"table:login_codes,alias:lc"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,notnull,type:uuid"`
	Code      string    `json:"-" bun:"code,notnull"`
	Used      bool      `json:"used" bun:"used,notnull,default:false"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:current_timestamp"`
	User      *User     `json:"-" bun:"rel:belongs-to,join:user_id=id,on_delete:cascade"`
}

// ExpiredAt reports whether the code is past its window at the given instant.
func (lc *LoginCode) ExpiredAt(now time.Time) bool {
	return now.Sub(lc.CreatedAt) >= LoginCodeWindow
}
