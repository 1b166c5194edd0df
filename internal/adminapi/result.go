package adminapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the envelope every client method returns. Data is nil whenever
// Success is false.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Ack is the result of calls that carry no data.
type Ack = Result[struct{}]

func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}

// wireEnvelope is the backend's body before data is decoded into its type.
type wireEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (w wireEnvelope) hasData() bool {
	return len(w.Data) > 0 && !bytes.Equal(w.Data, []byte("null"))
}

// decodeResult parses a 2xx body. When withData is set a successful envelope
// must carry data. A failed envelope never carries data, whatever the
// backend sent.
func decodeResult[T any](raw []byte, withData bool) (Result[T], error) {
	var w wireEnvelope
	if err := json.Unmarshal(raw, &w); err != nil {
		return Result[T]{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	res := Result[T]{Success: w.Success, Message: w.Message}
	if !w.Success || !withData {
		return res, nil
	}

	if !w.hasData() {
		return Result[T]{}, fmt.Errorf("%w: success without data", ErrDecode)
	}

	var data T
	if err := json.Unmarshal(w.Data, &data); err != nil {
		return Result[T]{}, fmt.Errorf("%w: data: %v", ErrDecode, err)
	}
	res.Data = &data

	return res, nil
}
