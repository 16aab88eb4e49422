package utils

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/banbox/bntp"
	"github.com/bytedance/sonic"
)

// numbers stay json.Number so decimal text survives decoding untouched
var jsonApi = sonic.Config{UseNumber: true}.Froze()

func Unmarshal(data []byte, out interface{}) error {
	return jsonApi.Unmarshal(data, out)
}

func UnmarshalString(text string, out interface{}) error {
	return jsonApi.UnmarshalFromString(text, out)
}

func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func MarshalString(v any) (string, error) {
	return sonic.MarshalString(v)
}

func UUID(length int) string {
	text := fmt.Sprintf("%x", rand.Uint64())
	if len(text) > length {
		text = text[:length]
	}
	return text
}

// RandToken cache-busting token from the synced clock, in milliseconds
func RandToken() string {
	return strconv.FormatInt(bntp.UTCStamp(), 10)
}

// RandInt return an int in [lo, hi]
func RandInt(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

func ArrContains[T comparable](s []T, e T) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

/*
UrlEncodeMap
encode map as url query string, keys sorted
*/
func UrlEncodeMap(params map[string]interface{}, escape bool) string {
	keys := KeysOfMap(params)
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		valueStr := Str(params[k])
		if escape {
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(valueStr))
		} else {
			parts = append(parts, k+"="+valueStr)
		}
	}
	return strings.Join(parts, "&")
}

/*
GetMapVal
get typed value from map, panic on type mismatch. only simple types supported
*/
func GetMapVal[T any](items map[string]interface{}, key string, defVal T) T {
	if val, ok := items[key]; ok {
		if tVal, ok := val.(T); ok {
			return tVal
		}
		var zero T
		reqType := reflect.TypeOf(zero).String()
		curType := reflect.TypeOf(val).String()
		panic(fmt.Sprintf("option %s should be %s, but is %s", key, reqType, curType))
	}
	return defVal
}

// PopMapVal same as GetMapVal, and delete the key
func PopMapVal[T any](items map[string]interface{}, key string, defVal T) T {
	val := GetMapVal(items, key, defVal)
	delete(items, key)
	return val
}

func SetFieldBy[T any](field *T, items map[string]interface{}, key string, defVal T) {
	if field == nil {
		panic(fmt.Sprintf("field can not be nil for key: %s", key))
	}
	val := GetMapVal(items, key, defVal)
	if !IsNil(val) {
		*field = val
	}
}

func SafeParams(params map[string]interface{}) map[string]interface{} {
	res := make(map[string]interface{}, len(params))
	for k, v := range params {
		res[k] = v
	}
	return res
}

func KeysOfMap[M ~map[K]V, K comparable, V any](m M) []K {
	r := make([]K, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	return r
}

/*
IsNil
a typed nil pointer stored in interface{} is not == nil
*/
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch reflect.TypeOf(i).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Array, reflect.Chan, reflect.Slice:
		return reflect.ValueOf(i).IsNil()
	default:
		return false
	}
}

// Str format a decoded json value as plain text, nil as ""
func Str(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MapValStr convert a decoded json object into a text record
func MapValStr(input map[string]interface{}) map[string]string {
	result := make(map[string]string, len(input))
	for key, value := range input {
		result[key] = Str(value)
	}
	return result
}

// ArrValStr convert decoded json objects into text records
func ArrValStr(items []map[string]interface{}) []map[string]string {
	result := make([]map[string]string, 0, len(items))
	for _, it := range items {
		result = append(result, MapValStr(it))
	}
	return result
}
