// Package models defines request and response types for the admin gateway
// and the operational listener. All types are JSON-serializable.
package models

import "net/http"

// NotFoundResponse is the body of every unknown /api/ route.
type NotFoundResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NotFound is the canonical {"status":404,"message":"Not Found"} body.
var NotFound = NotFoundResponse{Status: http.StatusNotFound, Message: "Not Found"}

// EmptyResponse encodes as {} and is returned for rejected requests.
type EmptyResponse struct{}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
