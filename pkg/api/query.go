package api

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/structs"
)

const queryTag = "url"

// Query serializes v into a URL query suffix. It accepts a Parameter, a
// map[string]string, or a struct (or pointer to one) whose fields are tagged
// `url:"name,omitempty"`. Struct fields keep their declaration order, map keys
// are sorted. The result is "" when there is nothing to encode, otherwise it
// starts with "?".
func Query(v any) string {
	pairs := queryPairs(v)
	if len(pairs) == 0 {
		return ""
	}

	return "?" + strings.Join(pairs, "&")
}

func queryPairs(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case Parameter:
		return t.pairs()
	case map[string]string:
		return Parameter(t).pairs()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	var pairs []string
	for _, field := range structs.New(rv.Interface()).Fields() {
		if !field.IsExported() {
			continue
		}

		name, omitempty := parseQueryTag(field.Tag(queryTag))
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name()
		}

		if omitempty && field.IsZero() {
			continue
		}

		value, ok := formatQueryValue(reflect.ValueOf(field.Value()))
		if !ok {
			continue
		}

		pairs = append(pairs, PercentEncode(name)+"="+PercentEncode(value))
	}

	return pairs
}

func (p Parameter) pairs() []string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, PercentEncode(key)+"="+PercentEncode(value))
	}
	sort.Strings(parameters)
	return parameters
}

func parseQueryTag(tag string) (string, bool) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts == "omitempty"
}

func formatQueryValue(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "", false
		}

		elems := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s, ok := formatQueryValue(v.Index(i)); ok {
				elems = append(elems, s)
			}
		}
		return strings.Join(elems, ","), len(elems) > 0
	}

	return "", false
}
