package dto

// RefreshReq represents the request body for the /refresh and /logout
// endpoints; both act on a refresh token.
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
