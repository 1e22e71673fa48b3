// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// String returns the string representation of the given
// enum value with the given map.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// BitIndexString returns the string representation of the given bit
// index value if it is a bit index value (typically an enum constant),
// and not an actual bit flag value.
func BitIndexString[T BitFlagConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// BitFlagString returns the string representation of the given bit flag value
// with the given values available.
func BitFlagString[T BitFlagConstraint](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation, the
// map from enum names to values, and the name of the enum type, which is
// used for the error message.
func SetString[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string representation, the
// map from enum names to values, and the name of the enum type, which is used
// for the error message. It also tries the lowercase version of the given string
// if the original version fails.
func SetStringLower[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringOr sets the given bit flag value from its string representation while
// preserving any bit flags already set, the map from enum names to values, and
// the name of the enum type, which is used for the error message.
func SetStringOr[S BitFlagSetter, T BitFlagConstraint](i S, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
		} else if flag == "" {
			continue
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// SetStringOrLower sets the given bit flag value from its string representation
// while preserving any bit flags already set, the map from enum names to values,
// and the name of the enum type, which is used for the error message. It also
// tries the lowercase version of each flag string if the original version fails.
func SetStringOrLower[S BitFlagSetter, T BitFlagConstraint](i S, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
		} else if val, ok := valueMap[strings.ToLower(flag)]; ok {
			i.SetFlag(true, val)
		} else if flag == "" {
			continue
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// Desc returns the description of the given enum value with
// the given map, falling back on its string representation
// if the description is not defined.
func Desc[T EnumConstraint](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// Values returns the given slice of enum values as
// a slice of the [Enum] interface.
func Values[T EnumConstraint](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// HasFlag returns whether the given flags have the given flag set.
// It is a helper function that takes the bit flags as an int64 pointer
// so that it can be accessed in an atomic, thread-safe way.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// HasAnyFlags returns whether the given flags have any of
// the given flags set. It is a helper function that takes the
// bit flags as an int64 pointer so that it can be accessed in
// an atomic, thread-safe way.
func HasAnyFlags(i *int64, f ...BitFlag) bool {
	in := atomic.LoadInt64(i)
	for _, flag := range f {
		if in&(1<<uint32(flag.Int64())) != 0 {
			return true
		}
	}
	return false
}

// SetFlag sets the value of the given flags in the given flags to the
// given value. It is a helper function that takes the bit flags as an
// int64 pointer so that it can be set in an atomic, thread-safe way.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint32(v.Int64())
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
	} else {
		in &^= mask
	}
	atomic.StoreInt64(i, in)
}

// UnmarshalText loads the given enum from the given text using
// [EnumSetter.SetString]. It logs any error instead of returning
// it to prevent one invalid enum from spoiling the loading of an
// entire object.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error(typeName+".UnmarshalText", "err", err)
	}
	return nil
}

// UnmarshalJSON loads the given enum from the given JSON data using
// [EnumSetter.SetString]. It logs any invalid enum error instead of
// returning it to prevent one invalid enum from spoiling the loading
// of an entire object.
func UnmarshalJSON(i EnumSetter, data []byte, typeName string) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s.UnmarshalJSON: %w", typeName, err)
	}
	if err := i.SetString(s); err != nil {
		slog.Error(typeName+".UnmarshalJSON", "err", err)
	}
	return nil
}

// UnmarshalYAML loads the given enum from the given YAML node using
// [EnumSetter.SetString]. It logs any invalid enum error instead of
// returning it to prevent one invalid enum from spoiling the loading
// of an entire object.
func UnmarshalYAML(i EnumSetter, n *yaml.Node, typeName string) error {
	if err := i.SetString(n.Value); err != nil {
		slog.Error(typeName+".UnmarshalYAML", "err", err)
	}
	return nil
}

// Scan loads the given enum from the given SQL scanner value,
// which must be a string, a byte slice, or nil. It logs any
// invalid enum error instead of returning it to prevent one
// invalid enum from spoiling the loading of an entire object.
func Scan(i EnumSetter, value any, typeName string) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("%s.Scan: value %v of type %T is not a string or []byte", typeName, value, value)
		}
		str = string(b)
	}
	if err := i.SetString(str); err != nil {
		slog.Error(typeName+".Scan", "err", err)
	}
	return nil
}
