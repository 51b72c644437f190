package entities

import "strings"

// User is an authenticated actor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - email is unique (enforced by the admin use case)
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         Role     `json:"role"`
	Branches     []string `json:"branches"`
}

func (u User) HasBranch(branchID string) bool {
	for _, b := range u.Branches {
		if b == branchID {
			return true
		}
	}
	return false
}

func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// UserSnapshot freezes who acted and in which role at the time of the action.
// Later edits or deletion of the user never touch stored snapshots.
type UserSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NormalizeKey lower-cases and trims a name used as a case-insensitive key
// (catalog items, suppliers, emails).
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
