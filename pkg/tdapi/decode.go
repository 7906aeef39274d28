package tdapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownConstructor is returned when @type does not name a constructor
	// of the expected class.
	ErrUnknownConstructor = errors.New("unknown constructor")
	// ErrConstructorMismatch is returned when a payload's @type differs from the
	// type it is decoded into.
	ErrConstructorMismatch = errors.New("constructor mismatch")
)

// DecodeError is returned by every decoding entry point of the package.
type DecodeError struct {
	// Constructor is the @type being decoded, when known.
	Constructor string
	Err         error
}

func (e *DecodeError) Error() string {
	if e.Constructor == "" {
		return fmt.Sprintf("tdapi: decode: %v", e.Err)
	}
	return fmt.Sprintf("tdapi: decode %s: %v", e.Constructor, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func wrapDecode(constructor string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Constructor: constructor, Err: err}
}

func checkConstructor(got, want string) error {
	if got == "" || got == want {
		return nil
	}
	return fmt.Errorf("%w: got %q, want %q", ErrConstructorMismatch, got, want)
}

func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || string(data) == "null"
}

func peekConstructor(data []byte) (string, error) {
	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", err
	}
	return head.Type, nil
}

func unmarshalClass[C Object](data json.RawMessage, class string) (C, error) {
	var zero C
	if isNull(data) {
		return zero, nil
	}
	constructor, err := peekConstructor(data)
	if err != nil {
		return zero, wrapDecode("", err)
	}
	v, ok := newObject(constructor).(C)
	if !ok {
		return zero, &DecodeError{
			Constructor: constructor,
			Err:         fmt.Errorf("%w: %q is not a %s", ErrUnknownConstructor, constructor, class),
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zero, wrapDecode(constructor, err)
	}
	return v, nil
}

func unmarshalList[C any](list []json.RawMessage, decode func(json.RawMessage) (C, error)) ([]C, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]C, 0, len(list))
	for _, data := range list {
		v, err := decode(data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// UnmarshalObject decodes any constructor or function of the schema, selected
// by the @type tag of data.
func UnmarshalObject(data []byte) (Object, error) {
	if isNull(data) {
		return nil, &DecodeError{Err: errors.New("empty payload")}
	}
	return unmarshalClass[Object](data, "schema object")
}

// FromJSON decodes data into a new T. A @type tag, when present, must match T.
//
//	msg, err := tdapi.FromJSON[tdapi.Message](data)
func FromJSON[T any, PT interface {
	*T
	Object
}](data []byte) (PT, error) {
	var v PT = new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, wrapDecode(v.Constructor(), err)
	}
	return v, nil
}

// UnmarshalResult decodes the response TDLib sent for fn. A TDLib error object
// is returned as *Error; any other object must belong to the result type of fn.
func UnmarshalResult(fn Function, data []byte) (Object, error) {
	obj, err := UnmarshalObject(data)
	if err != nil {
		return nil, err
	}
	if tdErr, ok := obj.(*Error); ok && fn.Class() != ClassError {
		return nil, tdErr
	}
	if obj.Class() != fn.Class() {
		return nil, &DecodeError{
			Constructor: obj.Constructor(),
			Err:         fmt.Errorf("%w: %s returns %s, got %s", ErrConstructorMismatch, fn.Constructor(), fn.Class(), obj.Class()),
		}
	}
	return obj, nil
}

// DecodeResult is UnmarshalResult with the result converted to T, which is
// either the concrete record or the class interface of fn's result.
func DecodeResult[T Object](fn Function, data []byte) (T, error) {
	var zero T
	obj, err := UnmarshalResult(fn, data)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, &DecodeError{
			Constructor: obj.Constructor(),
			Err:         fmt.Errorf("%w: cannot use %s as %T", ErrConstructorMismatch, obj.Constructor(), zero),
		}
	}
	return v, nil
}
