package objects

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Parameterizer lets a type choose its URL parameter form.
type Parameterizer interface {
	ToParam() string
}

// ToParam renders v for use in a URL path. Slices join their elements with
// "/" and nil renders as "".
func ToParam(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case Parameterizer:
		return t.ToParam()
	case reflect.Type:
		return t.Name()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, isBytes := v.([]byte); isBytes {
			break
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = ToParam(rv.Index(i).Interface())
		}
		return strings.Join(parts, "/")
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return ToParam(rv.Elem().Interface())
	}
	return paramString(v)
}

func paramString(v any) string {
	if t, ok := v.(reflect.Type); ok {
		return t.Name()
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// KeyQuery encodes value under key. Maps nest as key[sub]=..., slices as
// key[]=... and everything else as key=value.
func KeyQuery(key string, value any) string {
	var pairs []string
	appendQuery(&pairs, key, value)
	return strings.Join(pairs, "&")
}

// ToQuery encodes params as a query string with keys sorted, e.g.
// {"c": 3, "b": 2, "a": 1} becomes "a=1&b=2&c=3".
func ToQuery(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		appendQuery(&pairs, k, params[k])
	}
	return strings.Join(pairs, "&")
}

func appendQuery(pairs *[]string, key string, value any) {
	if value == nil {
		*pairs = append(*pairs, url.QueryEscape(key)+"=")
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := paramString(iter.Key().Interface())
			keys = append(keys, k)
			values[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendQuery(pairs, key+"["+k+"]", values[k])
		}
		return
	case reflect.Slice, reflect.Array:
		if _, isBytes := value.([]byte); isBytes {
			break
		}
		if rv.Len() == 0 {
			*pairs = append(*pairs, url.QueryEscape(key+"[]")+"=")
			return
		}
		for i := 0; i < rv.Len(); i++ {
			appendQuery(pairs, key+"[]", rv.Index(i).Interface())
		}
		return
	}

	*pairs = append(*pairs, url.QueryEscape(key)+"="+url.QueryEscape(ToParam(value)))
}
