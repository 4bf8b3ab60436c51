package dto

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля в частичном обновлении:
// поле не передано, передано null, передано значение.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some возвращает Optional с переданным значением
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null возвращает Optional с явным null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull сообщает, что поле передано как null
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// UnmarshalJSON вызывается только для присутствующих в теле полей, включая null
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
