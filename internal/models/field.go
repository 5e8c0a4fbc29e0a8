package models

import "encoding/json"

// Field is a course attribute that may arrive from the source as a JSON
// string, number or null. Null and absent both decode to the empty string,
// which the pipeline treats as nil (sorts last). Numbers keep the source's
// textual form so display and numeric coercion see the same value.
type Field string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		// Structured values have no tabular rendering.
		*f = ""
		return nil
	}
	*f = Field(data)
	return nil
}

func (f Field) String() string {
	return string(f)
}

// Empty reports whether the field carries no value.
func (f Field) Empty() bool {
	return f == ""
}
