package item

import (
	"fmt"
	"maps"
	"reflect"

	dfitem "github.com/df-mc/dragonfly/server/item"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Compound is an NBT compound tag. Values use the Go types of the nbt
// package: uint8, int16, int32, int64, float32, float64, string, []any,
// map[string]any and arrays such as [4]int32 for array tags.
type Compound map[string]any

// NewCompound creates a compound and passes it to fn for filling.
func NewCompound(fn func(c Compound)) Compound {
	c := Compound{}
	if fn != nil {
		fn(c)
	}
	return c
}

// Bool stores v as a byte tag.
func (c Compound) Bool(key string, v bool) Compound {
	var b uint8
	if v {
		b = 1
	}
	c[key] = b
	return c
}

// Byte stores a byte tag.
func (c Compound) Byte(key string, v uint8) Compound {
	c[key] = v
	return c
}

// Short stores a short tag.
func (c Compound) Short(key string, v int16) Compound {
	c[key] = v
	return c
}

// Int stores an int tag.
func (c Compound) Int(key string, v int32) Compound {
	c[key] = v
	return c
}

// Long stores a long tag.
func (c Compound) Long(key string, v int64) Compound {
	c[key] = v
	return c
}

// Float stores a float tag.
func (c Compound) Float(key string, v float32) Compound {
	c[key] = v
	return c
}

// Double stores a double tag.
func (c Compound) Double(key string, v float64) Compound {
	c[key] = v
	return c
}

// String stores a string tag.
func (c Compound) String(key, v string) Compound {
	c[key] = v
	return c
}

// ByteArray stores a byte array tag.
func (c Compound) ByteArray(key string, v ...uint8) Compound {
	c[key] = array(v)
	return c
}

// IntArray stores an int array tag.
func (c Compound) IntArray(key string, v ...int32) Compound {
	c[key] = array(v)
	return c
}

// LongArray stores a long array tag.
func (c Compound) LongArray(key string, v ...int64) Compound {
	c[key] = array(v)
	return c
}

// List stores a list tag.
func (c Compound) List(key string, elems ...any) Compound {
	c[key] = List(elems...)
	return c
}

// Compound stores a nested compound filled by fn.
func (c Compound) Compound(key string, fn func(c Compound)) Compound {
	c[key] = map[string]any(NewCompound(fn))
	return c
}

// Encode encodes c in the given encoding, such as nbt.NetworkLittleEndian.
func (c Compound) Encode(encoding nbt.Encoding) ([]byte, error) {
	b, err := nbt.MarshalEncoding(map[string]any(c), encoding)
	if err != nil {
		return nil, fmt.Errorf("item: encode nbt: %w", err)
	}
	return b, nil
}

// DecodeCompound decodes a compound encoded in the given encoding.
func DecodeCompound(b []byte, encoding nbt.Encoding) (Compound, error) {
	var m map[string]any
	if err := nbt.UnmarshalEncoding(b, &m, encoding); err != nil {
		return nil, fmt.Errorf("item: decode nbt: %w", err)
	}
	return Compound(m), nil
}

// List creates a list tag. All elements should share a type.
func List(elems ...any) []any {
	return append([]any{}, elems...)
}

// WithNBT returns s with every entry of c stored as a custom value.
func WithNBT(s dfitem.Stack, c Compound) dfitem.Stack {
	for k, v := range c {
		s = s.WithValue(k, v)
	}
	return s
}

// NBTOf returns the custom values of s as a compound.
func NBTOf(s dfitem.Stack) Compound {
	return Compound(maps.Clone(s.Values()))
}

// array copies v into a Go array of the same length, which the nbt package
// encodes as an array tag rather than a list.
func array[T uint8 | int32 | int64](v []T) any {
	arr := reflect.New(reflect.ArrayOf(len(v), reflect.TypeFor[T]())).Elem()
	reflect.Copy(arr, reflect.ValueOf(v))
	return arr.Interface()
}
