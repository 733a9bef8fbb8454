package utils

const (
	// Session cookie
	SessionCookieName = "travel_session"

	// Error messages
	ErrInvalidRequest     = "Invalid request"
	ErrInvalidNumeric     = "Invalid numeric input"
	ErrAllFieldsRequired  = "All fields are required"
	ErrEmailExists        = "Email already exists"
	ErrInvalidCredentials = "Invalid Credentials"
	ErrNotLoggedIn        = "Not logged in"
	ErrTripNotFound       = "Trip not found"
	ErrNotAuthorized      = "Not authorized"
	ErrTripNotFoundOrOwn  = "Trip not found or not authorized"
	ErrTripFieldsRequired = "Trip name, destination, and location are required"
	ErrQueryRequired      = "Query is required"
	ErrInternal           = "Internal server error"
	ErrFailedToStore      = "Failed to store data"
	ErrFailedToRetrieve   = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
