package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/questx-lab/tinfoil/pkg/api"
	"github.com/questx-lab/tinfoil/pkg/errorx"
)

// HTTPError is returned for every response with a non-2xx status. Response
// is the raw response; APIError holds the JSON error payload when Discord
// sent one. Errors is the per-field detail of an invalid form body, keyed
// like the request, e.g. Errors.Get("name._errors").
type HTTPError struct {
	Response *api.Response
	APIError errorx.Error
	Errors   api.JSON
}

func newHTTPError(resp *api.Response) *HTTPError {
	e := &HTTPError{
		Response: resp,
		APIError: errorx.Error{Code: errorx.GeneralError, Message: http.StatusText(resp.Code)},
	}

	if body, ok := resp.Body.(api.JSON); ok {
		if code, err := body.GetInt("code"); err == nil {
			e.APIError.Code = errorx.Code(code)
		}
		if msg, err := body.GetString("message"); err == nil && msg != "" {
			e.APIError.Message = msg
		}
		if errs, err := body.GetJSON("errors"); err == nil {
			e.Errors = errs
		}
	}

	return e
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %d %s (code %d)",
		e.Response.Method, e.Response.URL, e.Response.Code, e.APIError.Message, e.APIError.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.APIError
}

func (e *HTTPError) StatusCode() int {
	return e.Response.Code
}

// IsHTTPError unwraps err into an *HTTPError.
func IsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	return nil, false
}
