package dto

import "time"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request parameters"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid price: min 10 greater than max 5"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse stamps msg and the optional cause with the current time.
func NewErrorResponse(msg string, err error) ErrorResponse {
	resp := ErrorResponse{Message: msg, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
