package toml

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Unmarshal parses TOML data into the value pointed to by v
// Fields absent from the document keep their current values, so v can be pre-filled with defaults
func Unmarshal(data []byte, v any) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(parsed, v)
}

// Decode maps a parsed document onto v using `toml` tags, falling back to field names
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return errors.New("toml: target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	if val.CanAddr() && val.Addr().Type().Implements(textUnmarshalerType) {
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("expected string for %s, got %T", val.Type(), data)
		}
		return val.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return decodeValue(data, val.Elem())

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table for %s, got %T", val.Type(), data)
		}
		return decodeStruct(m, val)

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", data)
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		val.Set(out)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		if val.IsNil() {
			val.Set(reflect.MakeMap(val.Type()))
		}
		for k, item := range m {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := decodeValue(item, elem); err != nil {
				return fmt.Errorf("key %s: %w", k, err)
			}
			val.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int64)
		if !ok {
			return fmt.Errorf("cannot convert %T to int", data)
		}
		if val.OverflowInt(i) {
			return fmt.Errorf("%d overflows %s", i, val.Type())
		}
		val.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := data.(int64)
		if !ok || i < 0 || val.OverflowUint(uint64(i)) {
			return fmt.Errorf("cannot convert %v to %s", data, val.Type())
		}
		val.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int64:
			val.SetFloat(float64(f))
		default:
			return fmt.Errorf("cannot convert %T to float", data)
		}
		if val.Kind() == reflect.Float32 && math.Abs(val.Float()) > math.MaxFloat32 {
			return fmt.Errorf("%v overflows float32", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("unsupported kind %s", val.Kind())
	}
	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		ft := typ.Field(i)
		if !ft.IsExported() {
			continue
		}

		key := ft.Name
		if tag := ft.Tag.Get("toml"); tag != "" {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}

		if item, ok := data[key]; ok {
			if err := decodeValue(item, val.Field(i)); err != nil {
				return fmt.Errorf("%s.%s: %w", typ.Name(), ft.Name, err)
			}
		}
	}
	return nil
}
