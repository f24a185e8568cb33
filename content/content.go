// Package content resolves runtime-polymorphic content payloads into typed
// body variants sharing a single rendering contract.
//
// A payload arrives as decoded JSON (or YAML) of the shape
//
//	{"editable": bool, "body": <string | [string...] | {"text": string}>}
//
// Resolve validates the shape and picks the matching Body variant. Every
// variant extracts its canonical text differently; presentation is shared
// and implemented once by Present. Invalid shapes fail fast with a
// ContractError naming the violated clause; no variant ever sees a payload
// that did not validate.
package content

import (
	"fmt"
	"strings"
)

// ContractError reports a payload that violates the content contract.
// Clause names the check that failed.
type ContractError struct {
	Clause string
}

func (e *ContractError) Error() string {
	return "content: contract violation: " + e.Clause
}

func violation(format string, args ...any) error {
	return &ContractError{Clause: fmt.Sprintf(format, args...)}
}

// Body is the resolved shape of a payload body: exactly one of StringBody,
// ListBody, or ObjectBody. The union is sealed; a total switch over the
// three variants needs no default case.
type Body interface {
	// Text returns the body's canonical text.
	Text() string

	body()
}

// StringBody is a body that is a bare string.
type StringBody struct {
	Value string
}

// Text returns the string itself.
func (b StringBody) Text() string { return b.Value }

func (StringBody) body() {}

// ListBody is a body that is an ordered sequence of strings.
type ListBody struct {
	Items []string
}

// Text joins the items with single spaces. Callers that need the original
// sequence read Items directly.
func (b ListBody) Text() string { return strings.Join(b.Items, " ") }

func (ListBody) body() {}

// ObjectBody is a body that is an object carrying a text field.
type ObjectBody struct {
	Value string
}

// Text returns the object's text field.
func (b ObjectBody) Text() string { return b.Value }

func (ObjectBody) body() {}

// Payload is a validated content payload. Instances only come out of
// Resolve, so the Body is always one of the three variants.
type Payload struct {
	Editable bool
	Body     Body
}

// Render resolves the payload to its render instruction.
func (p Payload) Render() RenderInstruction {
	return Present(p.Editable, p.Body.Text())
}

// Resolve validates a decoded document value against the content contract
// and resolves its body variant. Checks run in order and the first failure
// wins: the payload must be present and an object, editable must be present
// and boolean, and the body must match exactly one variant. The sequence
// check takes precedence over the object check; a decoded sequence is also
// an "object" in loosely typed sources.
func Resolve(v any) (Payload, error) {
	if v == nil {
		return Payload{}, violation("payload is missing")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Payload{}, violation("payload is not an object (got %T)", v)
	}

	rawEditable, ok := obj["editable"]
	if !ok {
		return Payload{}, violation("editable field is missing")
	}
	editable, ok := rawEditable.(bool)
	if !ok {
		return Payload{}, violation("editable is not a boolean (got %T)", rawEditable)
	}

	rawBody, ok := obj["body"]
	if !ok {
		return Payload{}, violation("body field is missing")
	}
	body, err := resolveBody(rawBody)
	if err != nil {
		return Payload{}, err
	}

	return Payload{Editable: editable, Body: body}, nil
}

func resolveBody(v any) (Body, error) {
	switch b := v.(type) {
	case string:
		return StringBody{Value: b}, nil

	case []any:
		items := make([]string, len(b))
		for i, item := range b {
			s, ok := item.(string)
			if !ok {
				return nil, violation("body sequence element %d is not a string (got %T)", i, item)
			}
			items[i] = s
		}
		return ListBody{Items: items}, nil

	case []string:
		// Already-typed sequences show up from hand-built documents.
		items := make([]string, len(b))
		copy(items, b)
		return ListBody{Items: items}, nil

	case map[string]any:
		rawText, ok := b["text"]
		if !ok {
			return nil, violation("body object has no text field")
		}
		text, ok := rawText.(string)
		if !ok {
			return nil, violation("body object text is not a string (got %T)", rawText)
		}
		return ObjectBody{Value: text}, nil

	default:
		return nil, violation("body has unsupported shape %T", v)
	}
}
