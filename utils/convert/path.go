package convert

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"
)

// Get reads the value at a dotted path such as "profile.address.city".
// Maps with string keys, *ordereddict.Dict, structs (json tag or field
// name), pointers and slices (numeric segment) are traversed. The second
// result reports whether every segment was found.
func Get(target any, path string) (any, bool) {
	if path == "" {
		return target, target != nil
	}

	current := target
	for _, segment := range strings.Split(path, ".") {
		next, ok := getSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func getSegment(target any, segment string) (any, bool) {
	switch t := target.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := t[segment]
		return v, ok
	case *ordereddict.Dict:
		if t == nil {
			return nil, false
		}
		return t.Get(segment)
	}

	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(segment).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, segment)
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}

func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == name || (tag == "" && strings.EqualFold(field.Name, name)) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
