package route

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
)

// BindJSON decodes the request body as JSON into v.
// By default the decoder rejects unknown fields that do not map to exported
// struct fields. Pass true to allow unknown fields.
// Exactly one JSON value must be present in the body; trailing data is an error.
func (c *Context) BindJSON(v any, allowUnknownFields ...bool) error {
	dec := json.NewDecoder(c.Request.Body)

	if len(allowUnknownFields) == 0 || !allowUnknownFields[0] {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("route: unexpected trailing data after JSON value")
	}

	return nil
}

// BindXML decodes the request body as XML into v.
// Exactly one XML element must be present in the body; trailing data is an error.
func (c *Context) BindXML(v any) error {
	dec := xml.NewDecoder(c.Request.Body)

	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("route: unexpected trailing data after XML value")
	}

	return nil
}
