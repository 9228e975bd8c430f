package profile

// UserProfile is the read-only user object consumed by the store's clients.
// Membership fields are display data; the data store never mutates them.
type UserProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	MembershipType   string `json:"membershipType"`
	VisitsLeft       int    `json:"visitsLeft"`
	TotalVisits      int    `json:"totalVisits"`
	MembershipExpiry string `json:"membershipExpiry"`
}

// account is the persisted record, profile plus credentials.
type account struct {
	UserProfile
	PasswordHash string `json:"passwordHash"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserProfile `json:"user"`
}

type RefreshResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}
