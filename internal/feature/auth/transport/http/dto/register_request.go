// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /signup endpoint.
// Confirmation is checked against Password by the usecase so the mismatch
// surfaces as a business rejection, not a binding error.
type RegisterReq struct {
	Username     string `json:"username" binding:"required,max=150"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Confirmation string `json:"confirmation" binding:"required"`
}
