package httpdto

import (
	"time"

	"chatboard/internal/domain/user"
)

// CredentialsRequest is used for POST /user/signup, POST /user/login and PATCH /user/resetPassword
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r CredentialsRequest) ToCredentials() user.Credentials {
	return user.Credentials{Username: r.Username, Password: r.Password}
}

// ToUser builds the record stored on signup.
func (r CredentialsRequest) ToUser(joined time.Time) user.User {
	return user.User{
		Username:   r.Username,
		Password:   r.Password,
		DateJoined: joined,
	}
}

// ToUpdates is the partial update applied by a password reset.
func (r CredentialsRequest) ToUpdates() user.Updates {
	password := r.Password
	return user.Updates{Password: &password}
}
