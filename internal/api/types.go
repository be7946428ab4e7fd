// Package api defines the shared HTTP request/response types.
package api

import "time"

// RegisterRequest is the request body for POST /api/user/register.
// All four fields are required; presence is the only validation performed.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StatusResponse is the generic status/message pair returned by the auth endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LoginResponse carries the issued token plus a denormalized user summary.
type LoginResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PunchRequest is the request body for POST /punch/in and /punch/out.
// The location selector is free-form and may be omitted.
type PunchRequest struct {
	SelectedOption string `json:"selectedOption"`
}

// PunchResponse acknowledges a punch action.
type PunchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PunchRecordData is a single punch record as exposed over HTTP.
type PunchRecordData struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Location  string    `json:"location"`
	PunchType string    `json:"punchType"`
	Time      time.Time `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

// PunchDataResponse is the response body for the GET /get-data endpoints.
type PunchDataResponse struct {
	Success   bool              `json:"success"`
	Data      []PunchRecordData `json:"data"`
	Message   string            `json:"message"`
	ExtraInfo string            `json:"extraInfo"`
}

// DateResponse is the response body for GET /get-date.
type DateResponse struct {
	Date time.Time `json:"date"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
