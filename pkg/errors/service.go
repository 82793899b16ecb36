package errors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ServiceError is the JSON body of every failed status API call.
type ServiceError struct {
	Message string `json:"message"`
}

// WriteServiceError writes status and a ServiceError carrying msg.
func WriteServiceError(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(ServiceError{Message: msg})
}
