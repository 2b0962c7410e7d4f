package config

import "reflect"

// merge copies every non-zero leaf of src onto dst, descending into nested
// structs. An empty but non-nil slice or map counts as set.
func merge(dst, src reflect.Value) {
	if !src.IsValid() {
		return
	}

	if src.Kind() == reflect.Struct {
		for i := 0; i < src.NumField(); i++ {
			merge(dst.Field(i), src.Field(i))
		}
		return
	}

	if dst.CanSet() && !src.IsZero() {
		dst.Set(src)
	}
}
