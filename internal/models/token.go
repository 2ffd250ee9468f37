package models

// AuthResult is the data payload of successful register and login calls
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
