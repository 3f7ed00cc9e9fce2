package ports

import (
	"task-manager-api/internal/domain/user"
)

type Auth interface {
	// SessionToken mints a long-lived token after a successful password
	// check.
	SessionToken(u *user.User) (string, error)
	// InvalidationToken mints a near-instantly-expiring token telling
	// the client to drop its session.
	InvalidationToken(id string) string
	CheckPassword(u *user.User, requestPassword string) error
}
