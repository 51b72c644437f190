package interfaces

import "hotel_procurement/internal/domain/entities"

// ITokenService issues and verifies bearer tokens.
type ITokenService interface {
	Issue(u entities.User) (string, error)
	Parse(token string) (userID string, err error)
}

// IPasswordHasher hashes and checks user passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
