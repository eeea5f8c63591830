// Package models - API response envelope.
// Every endpoint, success or failure, answers with the same JSON shape so
// clients can branch on the stable `success` field.
//
// Response Design Principles:
// - One envelope for everything: {success, message?, data?, error?, count?,
//   query?, pagination?}
// - Optional fields use omitempty; Count is a pointer so an empty list still
//   serializes count:0 instead of dropping the field
// - Error bodies never carry stack traces or internal detail, only a display
//   message and, for validation failures, the per-field violations
package models

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Query      string      `json:"query,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the client-facing error payload inside the envelope.
type ErrorBody struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes a single schema violation on a named field.
// Validation responses carry the full ordered list collected in one pass.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination describes the window of a paginated list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// NewDataResponse builds a success envelope carrying only data.
func NewDataResponse(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse builds a success envelope with a display message,
// used by create/update/delete endpoints.
func NewMessageResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse builds a success envelope for list endpoints, always
// including the item count.
func NewListResponse(count int, data interface{}) *Response {
	return &Response{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewErrorResponse builds a failure envelope with a display message.
func NewErrorResponse(message string) *Response {
	return &Response{
		Success: false,
		Error:   &ErrorBody{Message: message},
	}
}

// NewValidationErrorResponse builds a failure envelope carrying the ordered
// list of field violations.
func NewValidationErrorResponse(message string, details []FieldError) *Response {
	return &Response{
		Success: false,
		Error:   &ErrorBody{Message: message, Details: details},
	}
}
