package memory

import (
	"fmt"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// UserDirectory holds users in seed order. A username appears at most once,
// so a username and password pair can never match two users.
type UserDirectory struct {
	users []domain.User
	index map[string]int
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{index: make(map[string]int)}
}

func (d *UserDirectory) Add(user domain.User) error {
	if _, exists := d.index[user.Username]; exists {
		return fmt.Errorf("add user %q: %w", user.Username, domain.ErrUserExists)
	}
	d.index[user.Username] = len(d.users)
	d.users = append(d.users, user)
	return nil
}

func (d *UserDirectory) FindByUsername(username string) (domain.User, bool) {
	i, ok := d.index[username]
	if !ok {
		return domain.User{}, false
	}
	return d.users[i], true
}

func (d *UserDirectory) List() []domain.User {
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *UserDirectory) Count() int {
	return len(d.users)
}
