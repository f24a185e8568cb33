package content

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for raw content documents.
// Implement this interface to feed Resolve from alternative formats.
type Codec interface {
	// Decode deserializes bytes into a generic document value.
	Decode(data []byte) (any, error)

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Decode deserializes JSON bytes into a generic value.
func (JSONCodec) Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("expected JSON: %w", err)
	}
	return v, nil
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// Ensure JSONCodec implements Codec.
var _ Codec = JSONCodec{}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Decode deserializes YAML bytes into a generic value.
func (YAMLCodec) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// Ensure YAMLCodec implements Codec.
var _ Codec = YAMLCodec{}

// Parse decodes a raw document with the codec and resolves it.
func Parse(codec Codec, data []byte) (Payload, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return Payload{}, err
	}
	return Resolve(v)
}

// ParseTabs decodes a tab-key to payload document and resolves every
// payload. The first contract violation fails the whole document; there is
// no partial resolution.
func ParseTabs(codec Codec, data []byte) (map[string]Payload, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, violation("tab document is not an object (got %T)", v)
	}

	tabs := make(map[string]Payload, len(obj))
	for key, raw := range obj {
		p, err := Resolve(raw)
		if err != nil {
			return nil, fmt.Errorf("tab %q: %w", key, err)
		}
		tabs[key] = p
	}
	return tabs, nil
}
