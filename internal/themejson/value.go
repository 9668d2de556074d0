package themejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant held by a Value
type Kind int

// Value kinds. The zero Value is KindNull.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is an immutable JSON tree node. Objects keep their fields in document order.
type Value struct {
	kind Kind
	text string // string contents or the verbatim number literal
	b    bool
	arr  []Value
	obj  *orderedmap.OrderedMap[string, Value]
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number wraps a number literal such as "16" or "1.5"
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// Array wraps a list of elements
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Field is one key/value pair used to build objects in order.
type Field struct {
	Key   string
	Value Value
}

// Object builds an object from fields in the given order.
// A repeated key keeps its first position and its last value.
func Object(fields ...Field) Value {
	m := orderedmap.New[string, Value]()
	for _, f := range fields {
		m.Set(f.Key, f.Value)
	}
	return Value{kind: KindObject, obj: m}
}

// Kind returns the variant of v
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null (or the zero Value)
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsComposite reports whether v is an object or an array
func (v Value) IsComposite() bool { return v.kind == KindObject || v.kind == KindArray }

// Len returns the number of fields or elements; zero for scalars
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Field looks up a direct field of an object. Non-objects have no fields.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// Has reports whether an object carries a non-null field with the given key
func (v Value) Has(key string) bool {
	f, ok := v.Field(key)
	return ok && !f.IsNull()
}

// Fields iterates an object's fields in document order, or an array's elements keyed by index.
// Scalars yield nothing.
func (v Value) Fields() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		switch v.kind {
		case KindObject:
			for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
				if !yield(pair.Key, pair.Value) {
					return
				}
			}
		case KindArray:
			for i, elem := range v.arr {
				if !yield(strconv.Itoa(i), elem) {
					return
				}
			}
		}
	}
}

// Text returns the display form of a value: strings unquoted, numbers verbatim,
// null as "", composites as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber, KindString:
		return v.text
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// String implements fmt.Stringer
func (v Value) String() string { return v.Text() }

// MarshalJSON encodes v keeping field order and number literals
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.text)
	case KindString:
		data, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		i := 0
		for key, field := range v.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte(':')
			if err := field.encode(buf); err != nil {
				return err
			}
			i++
		}
		buf.WriteByte('}')
	}
	return nil
}

// UnmarshalJSON decodes any JSON document into v
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Decode parses a complete JSON document
func Decode(data []byte) (Value, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader parses a single JSON document from r. Trailing data is an error.
func DecodeReader(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	m := orderedmap.New[string, Value]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}

		field, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w", key, err)
		}
		m.Set(key, field)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, obj: m}, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var elems []Value
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", len(elems), err)
		}
		elems = append(elems, elem)
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, arr: elems}, nil
}
