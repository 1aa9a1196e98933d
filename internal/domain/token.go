package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the registry row behind an issued bearer token. The token
// string handed to the client is a signed JWT; its jti must have a live
// row here to be accepted. Login deletes every row of the client before
// inserting a new one, so only the most recent login's token validates.
type AuthToken struct {
	ID        int64
	JTI       uuid.UUID
	ClientID  int64
	CreatedAt time.Time
}
