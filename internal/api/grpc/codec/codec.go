// Package codec registers the JSON gRPC codec used by the alarm API.
//
// Messages travel as the same JSON objects the desktop bridge consumes, so
// the API needs no generated protobuf types. Clients select the codec with
// grpc.CallContentSubtype(Name).
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype of the codec.
const Name = "json"

// jsonCodec implements encoding.Codec with encoding/json.
type jsonCodec struct{}

func init() { //nolint:gochecknoinits // gRPC codecs are registered at init time.
	encoding.RegisterCodec(jsonCodec{})
}

// Marshal implements encoding.Codec.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}

	return data, nil
}

// Unmarshal implements encoding.Codec.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}

	return nil
}

// Name implements encoding.Codec.
func (jsonCodec) Name() string {
	return Name
}
