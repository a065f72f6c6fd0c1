// Package model provides the database-backed records for the euchre server.
package model

// UserError is an error that is safe to show to the end user
type UserError string

func (u UserError) Error() string {
	return string(u)
}
