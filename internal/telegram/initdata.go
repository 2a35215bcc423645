package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/telemood/moodtrack/internal/types"
)

// ErrNoUser is returned when the init data carries no resolvable user id.
var ErrNoUser = errors.New("no user id in init data")

// initDataUser is the user object embedded in the init data query string.
type initDataUser struct {
	ID        types.FlexInt64 `json:"id"`
	FirstName string          `json:"first_name"`
	Username  string          `json:"username"`
}

// ParseUserID extracts the numeric user id from a Telegram WebApp initData
// string: a URL-query-form payload whose "user" field is URL-encoded JSON.
// The signature fields are left unverified; only the id is read.
func ParseUserID(initData string) (int64, error) {
	if initData == "" {
		return 0, ErrNoUser
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, fmt.Errorf("malformed init data: %w", err)
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return 0, ErrNoUser
	}

	var user initDataUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return 0, fmt.Errorf("malformed init data user: %w", err)
	}
	if user.ID == 0 {
		return 0, ErrNoUser
	}

	return user.ID.Int64(), nil
}
