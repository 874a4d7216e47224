package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeletedResponse resultado booleano de una eliminación.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
