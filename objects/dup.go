package objects

import "reflect"

// DeepDup returns a deep copy of v. Maps, slices, arrays, pointers and the
// exported fields of structs are copied recursively; shared pointers and
// cycles are preserved in the copy. Unexported struct fields, channels and
// functions are copied shallowly.
func DeepDup[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type()).Elem()
	d := duplicator{seen: make(map[pointerKey]reflect.Value)}
	d.copy(dst, src)
	return dst.Interface().(T)
}

type pointerKey struct {
	typ  reflect.Type
	addr uintptr
}

type duplicator struct {
	seen map[pointerKey]reflect.Value
}

func (d duplicator) copy(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		key := pointerKey{typ: src.Type(), addr: src.Pointer()}
		if cp, ok := d.seen[key]; ok {
			dst.Set(cp)
			return
		}
		cp := reflect.New(src.Elem().Type())
		d.seen[key] = cp
		d.copy(cp.Elem(), src.Elem())
		dst.Set(cp)

	case reflect.Interface:
		if src.IsNil() {
			return
		}
		inner := src.Elem()
		cp := reflect.New(inner.Type()).Elem()
		d.copy(cp, inner)
		dst.Set(cp)

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		cp := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			d.copy(cp.Index(i), src.Index(i))
		}
		dst.Set(cp)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			d.copy(dst.Index(i), src.Index(i))
		}

	case reflect.Map:
		if src.IsNil() {
			return
		}
		cp := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			value := reflect.New(iter.Value().Type()).Elem()
			d.copy(value, iter.Value())
			cp.SetMapIndex(iter.Key(), value)
		}
		dst.Set(cp)

	case reflect.Struct:
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if dst.Field(i).CanSet() {
				d.copy(dst.Field(i), src.Field(i))
			}
		}

	default:
		dst.Set(src)
	}
}
