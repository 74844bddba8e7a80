package models

// UserPage is one page of the user listing.
//
// The JSON field names are capitalised to stay compatible with existing
// clients of the listing endpoint.
type UserPage struct {
	// Data holds the users of the requested page in insertion order.
	Data []User `json:"Data"`

	// TotalItems is the number of users in the store.
	TotalItems int `json:"TotalItems"`

	// TotalPages is ceil(TotalItems / PageSize).
	TotalPages int `json:"TotalPages"`

	// CurrentPage is the 1-based page number that was served.
	CurrentPage int `json:"CurrentPage"`

	// PageSize is the maximum number of users per page.
	PageSize int `json:"PageSize"`
}

// ErrorResponse is the body of every single-message failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every validation message produced for a
// rejected user payload.
type ValidationErrorResponse struct {
	Errors []string `json:"Errors"`
}
