package server

import (
	"bytes"
	"encoding/json"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// maxExactInt is the largest integer a protobuf double holds exactly
const maxExactInt = 1 << 53

// toStruct encodes v as a protobuf Struct through its JSON form.
// Numbers with a fraction, an exponent or beyond the exact double range
// travel as strings so decimal amounts keep every digit.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, wireError(err, "failed to encode message")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, wireError(err, "message is not a JSON object")
	}

	s, err := structpb.NewStruct(exactNumbers(m).(map[string]any))
	if err != nil {
		return nil, wireError(err, "failed to build struct")
	}
	return s, nil
}

// fromStruct decodes s into v through its JSON form
func fromStruct(s *structpb.Struct, v any) error {
	data, err := structJSON(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return wireError(err, "failed to decode message")
	}
	return nil
}

func structJSON(s *structpb.Struct) ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, wireError(err, "failed to encode struct")
	}
	return data, nil
}

func exactNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = exactNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = exactNumbers(item)
		}
		return t
	case json.Number:
		if !strings.ContainsAny(string(t), ".eE") {
			if n, err := t.Int64(); err == nil && n <= maxExactInt && n >= -maxExactInt {
				return float64(n)
			}
		}
		return string(t)
	default:
		return v
	}
}

func wireError(err error, message string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDecodeFailed).
		WithOperation("server.wire")
}
