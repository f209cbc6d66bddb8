package discord

import "net/http"

const AuditLogReasonHeader = "X-Audit-Log-Reason"

type requestOptions struct {
	body   any
	query  any
	header http.Header
}

type RequestOption func(*requestOptions)

// WithBody sends v JSON-encoded with Content-Type application/json. A v that
// is already an api.Body, such as api.Parameter for a form, is sent as is.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) {
		o.body = v
	}
}

// WithQuery appends v to the path, see api.Query for the accepted types.
func WithQuery(v any) RequestOption {
	return func(o *requestOptions) {
		o.query = v
	}
}

// WithHeader sets an extra header. It replaces a base header of the same
// name, including Authorization and User-Agent.
func WithHeader(name, value string) RequestOption {
	return WithHeaders(http.Header{name: {value}})
}

func WithHeaders(header http.Header) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		for name, values := range header {
			o.header[http.CanonicalHeaderKey(name)] = values
		}
	}
}

// WithReason records reason in the guild audit log. An empty reason adds
// nothing.
func WithReason(reason string) RequestOption {
	return WithHeaders(AuditLogReason(reason))
}

// AuditLogReason returns the header carrying reason, or an empty header when
// reason is empty. The value is sent as is, without escaping.
func AuditLogReason(reason string) http.Header {
	if reason == "" {
		return http.Header{}
	}

	return http.Header{AuditLogReasonHeader: {reason}}
}
