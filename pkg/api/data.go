package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/questx-lab/tinfoil/pkg/errorx"
)

type Parameter map[string]string

func (p Parameter) ToReader() (io.Reader, string, error) {
	return strings.NewReader(p.Encode()), "application/x-www-form-urlencoded", nil
}

func (p Parameter) Encode() string {
	return strings.Join(p.pairs(), "&")
}

type JSON map[string]any

type Array []JSON

func (j JSON) ToReader() (io.Reader, string, error) {
	return JSONBody(j).ToReader()
}

type jsonBody struct {
	v any
}

// JSONBody wraps any JSON-serializable value as a request body.
func JSONBody(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) ToReader() (io.Reader, string, error) {
	buf, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", errors.Wrapf(err, "cannot marshal %T", b.v)
	}
	return bytes.NewReader(buf), "application/json", nil
}

func (m JSON) GetJSON(key string) (JSON, error) {
	value, err := m.Get(key)
	if err != nil {
		return nil, err
	}

	switch t := value.(type) {
	case nil:
		return nil, nil
	case JSON:
		return t, nil
	case map[string]any:
		return JSON(t), nil
	}

	return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetInt(key string) (int, error) {
	value, err := m.Get(key)
	if err != nil {
		return 0, err
	}

	switch t := value.(type) {
	case int:
		return t, nil
	case float64:
		if t == float64(int(t)) {
			return int(t), nil
		}
		return 0, fmt.Errorf("invalid type of field %s (actually float64)", key)
	}

	return 0, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetString(key string) (string, error) {
	value, err := m.Get(key)
	if err != nil {
		return "", err
	}

	if value == nil {
		return "", nil
	}

	if s, ok := value.(string); ok {
		return s, nil
	}

	return "", fmt.Errorf("invalid type of field %s (%T)", key, value)
}

// Get looks up a dotted key path, e.g. "user.id".
func (m JSON) Get(key string) (any, error) {
	key, subKey, found := strings.Cut(key, ".")

	value, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("not found field %s", key)
	}

	if found {
		switch mvalue := value.(type) {
		case JSON:
			return mvalue.Get(subKey)
		case map[string]any:
			return JSON(mvalue).Get(subKey)
		}
		return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
	}

	return value, nil
}

// bytesToBody parses a JSON document into JSON for objects or Array for
// arrays of objects. Any other top-level value is returned as decoded.
func bytesToBody(body []byte) (any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case map[string]any:
		return JSON(t), nil
	case []any:
		array := make(Array, 0, len(t))
		for _, elem := range t {
			obj, ok := elem.(map[string]any)
			if !ok {
				return t, nil
			}
			array = append(array, JSON(obj))
		}
		return array, nil
	}

	return v, nil
}

type Response struct {
	Method  string
	URL     string
	Code    int
	Header  http.Header
	RawBody []byte

	// Body is JSON or Array when the response declared application/json,
	// otherwise the raw text.
	Body any
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

// Decode copies the parsed body into v, matching fields by their json tag.
// A text body can only be decoded into a *string; an empty text body leaves v
// untouched.
func (r *Response) Decode(v any) error {
	if text, ok := r.Body.(string); ok {
		if s, ok := v.(*string); ok {
			*s = text
			return nil
		}

		if text == "" {
			return nil
		}

		return errors.Wrapf(errorx.ErrBadResponse, "cannot decode %q response into %T",
			r.Header.Get("Content-Type"), v)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  v,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(r.Body); err != nil {
		return errors.Wrap(errorx.New(errorx.BadResponse, "%v", err), "decode response")
	}

	return nil
}

func PercentEncode(s string) string {
	s = url.QueryEscape(s)
	return strings.ReplaceAll(s, "+", "%20")
}
