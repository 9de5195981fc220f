package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPBody is the JSON envelope the API returns for any failure.
type HTTPBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToHTTPBody converts any error into the wire envelope. Non-structured
// errors are reported as INTERNAL without leaking the cause chain.
func ToHTTPBody(err error) HTTPBody {
	if err == nil {
		return HTTPBody{Code: CodeOK.String()}
	}

	var structured *Error
	if As(err, &structured) {
		return HTTPBody{
			Code:    structured.Code.String(),
			Message: structured.Message,
			Details: structured.Meta,
		}
	}

	return HTTPBody{
		Code:    CodeInternal.String(),
		Message: "internal error",
	}
}

// WriteHTTP serializes an error to the response writer with the status
// derived from its code.
func WriteHTTP(w http.ResponseWriter, err error) {
	body := ToHTTPBody(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(GetCode(err).HTTPStatus())
	_ = json.NewEncoder(w).Encode(body)
}
