package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeOptions turns an option list into its stored form. Empty lists are
// stored as NULL.
func EncodeOptions(options []string) (datatypes.JSON, error) {
	if len(options) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeOptions reverses EncodeOptions. NULL and JSON null decode to nil.
func DecodeOptions(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
