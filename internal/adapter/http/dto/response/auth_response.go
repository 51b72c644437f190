package response

import "hotel_procurement/internal/domain/entities"

type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Branches []string `json:"branches"`
}

func FromUser(u entities.User) UserResponse {
	branches := u.Branches
	if branches == nil {
		branches = []string{}
	}
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Branches: branches}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
