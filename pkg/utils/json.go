// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solsafe/cli/pkg/constants"
)

// MarshalIndent renders v as JSON with two space indentation
func MarshalIndent(v interface{}) ([]byte, error) {
	contentBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return contentBytes, nil
}

// WriteJSON writes the provided interface to a JSON file
func WriteJSON(path string, v interface{}) error {
	contentBytes, err := MarshalIndent(v)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, contentBytes, constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failed to write JSON to %s: %w", path, err)
	}

	return nil
}
