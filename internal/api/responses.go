// Package api defines the shared HTTP response envelopes used by all handlers.
package api

// ErrorResponse is the body returned for every failed request.
// Code is a stable machine-readable identifier for business-rule rejections;
// it is empty for plain validation or transport errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the body returned for mutations that produce no resource.
// Code distinguishes idempotent outcomes (e.g. ADDED vs ALREADY_WATCHED).
type MessageResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// TokenResponse is the body returned by login, signup and refresh.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Stable business-rule rejection codes.
const (
	CodeBidTooLow          = "BID_TOO_LOW"
	CodeBelowStartingPrice = "BELOW_STARTING_PRICE"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeListingClosed      = "LISTING_CLOSED"
	CodeAlreadyClosed      = "ALREADY_CLOSED"
	CodeNotOwner           = "NOT_OWNER"
	CodeNotFound           = "NOT_FOUND"
	CodeUnknownCategory    = "UNKNOWN_CATEGORY"
	CodePasswordsMismatch  = "PASSWORDS_MISMATCH"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeAdded              = "ADDED"
	CodeAlreadyWatched     = "ALREADY_WATCHED"
	CodeRemoved            = "REMOVED"
	CodeNotWatched         = "NOT_WATCHED"
)
