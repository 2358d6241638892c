package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
)

// decode reads a request struct into a typed request through its JSON form.
func decode(in *structpb.Struct, out any) error {
	if in == nil {
		return errors.InvalidArgument("request is required")
	}
	data, err := json.Marshal(in.AsMap())
	if err != nil {
		return errors.InvalidArgument("request is not valid JSON")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode turns a typed response into a struct through its JSON form.
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return out, nil
}

// EncodeRequest builds a request struct; used by clients.
func EncodeRequest(v any) (*structpb.Struct, error) {
	return encode(v)
}

// DecodeResponse reads a response struct; used by clients.
func DecodeResponse(in *structpb.Struct, out any) error {
	return decode(in, out)
}
