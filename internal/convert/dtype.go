package convert

import "strings"

// nxDTypes maps the value-type tokens of the encoded dialect to the
// storage dtype labels of the simplified form. NX_NUMBER is a generic
// number and defaults to the float storage type.
var nxDTypes = map[string]string{
	"NX_FLOAT":     "float32",
	"NX_INT":       "int16",
	"NX_BOOLEAN":   "bool",
	"NX_CHAR":      "str",
	"NX_NUMBER":    "float32",
	"NX_DATE_TIME": "datetime64",
}

// inferDType derives a storage dtype label from the native kinds of an
// enumeration value set, the way a numeric array library would type the
// set: any string makes the whole set string-like, floats win over
// integers, and a pure bool set stays bool.
func inferDType(values []any) string {
	hasFloat := false
	hasInt := false
	hasBool := false

	for _, v := range values {
		switch v.(type) {
		case string:
			return "str"
		case float32, float64:
			hasFloat = true
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			hasInt = true
		case bool:
			hasBool = true
		default:
			return "str"
		}
	}

	switch {
	case hasFloat:
		return "float64"
	case hasInt:
		return "int64"
	case hasBool:
		return "bool"
	default:
		return "str"
	}
}

// normalizeDType rewrites every string-like dtype label to the fixed
// "char" label used by the simplified form for enumerated values.
func normalizeDType(dtype string) string {
	if strings.HasPrefix(dtype, "str") {
		return "char"
	}

	return dtype
}
