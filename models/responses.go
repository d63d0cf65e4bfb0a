package models

// AccessToken is returned by a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}
