// Package admin holds the login payload of the admin dashboard.
package admin

import "log/slog"

// Credentials are sent once per login and never stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogValue keeps the password out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.Email))
}
