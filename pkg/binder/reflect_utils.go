package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// structTarget unwraps v into the settable struct it points to.
func structTarget(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}
	if rv = rv.Elem(); rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}
	return rv, nil
}

// boundField is an exported struct field together with the parameter it reads.
type boundField struct {
	value  reflect.Value
	field  reflect.StructField
	param  string
	tagged bool
}

// boundFields lists the settable fields of rv for tagName, leaving out fields
// tagged "-". Untagged fields read the lowercased field name.
func boundFields(rv reflect.Value, tagName string) []boundField {
	rt := rv.Type()
	out := make([]boundField, 0, rt.NumField())
	for i := range rt.NumField() {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		sf := rt.Field(i)
		tag := sf.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		out = append(out, boundField{value: f, field: sf, param: name, tagged: tag != ""})
	}
	return out
}

// bindToStruct copies values into the struct v points to. Missing parameters
// leave their fields untouched.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structTarget(v, bindErr)
	if err != nil {
		return err
	}
	for _, bf := range boundFields(rv, tagName) {
		vals := values[bf.param]
		if len(vals) == 0 {
			continue
		}
		if err := setFieldValue(bf.value, bf.field.Type, vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, bf.field.Name, err)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, typ reflect.Type, values []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(typ.Elem()))
		}
		return setFieldValue(field.Elem(), typ.Elem(), values)
	case reflect.Slice:
		return setSliceValue(field, typ, values)
	}
	if len(values) == 0 {
		return nil
	}
	return setScalar(field, typ, values[0])
}

func setScalar(field reflect.Value, typ reflect.Type, value string) error {
	switch typ.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", typ.Kind())
	}
	return nil
}

// parseBool also accepts what HTML checkboxes and selects submit.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid bool value %q", value)
	}
	return b, nil
}

// setSliceValue accepts repeated parameters, comma separated lists, or both.
func setSliceValue(field reflect.Value, typ reflect.Type, values []string) error {
	var items []string
	for _, v := range values {
		for item := range strings.SplitSeq(v, ",") {
			items = append(items, strings.TrimSpace(item))
		}
	}

	slice := reflect.MakeSlice(typ, len(items), len(items))
	for i, item := range items {
		if err := setFieldValue(slice.Index(i), typ.Elem(), []string{item}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
