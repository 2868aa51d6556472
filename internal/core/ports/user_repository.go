package ports

import "github.com/mianwali/crop-advisory/internal/core/domain"

// UserRepository holds the known users. Usernames are unique.
type UserRepository interface {
	Add(user domain.User) error
	FindByUsername(username string) (domain.User, bool)
	List() []domain.User
	Count() int
}
