package descriptors

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// ToJSONValue converts descriptors to the generic form produced by decoding
// their JSON encoding, which is the only input shape gojq accepts.
func ToJSONValue(descriptors []Descriptor) ([]any, error) {
	encoded, err := json.Marshal(descriptors)
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptors: %w", err)
	}

	var decoded []any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode descriptors: %w", err)
	}
	return decoded, nil
}

// Query runs a jq expression over the JSON form of descriptors and returns
// every emitted value.
func Query(descriptors []Descriptor, expression string) ([]any, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq filter %q: %w", expression, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq filter %q: %w", expression, err)
	}

	input, err := ToJSONValue(descriptors)
	if err != nil {
		return nil, err
	}
	results := make([]any, 0)
	iter := code.Run(input)
	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if runErr, isErr := value.(error); isErr {
			return nil, fmt.Errorf("jq filter %q failed: %w", expression, runErr)
		}
		results = append(results, value)
	}
	return results, nil
}
