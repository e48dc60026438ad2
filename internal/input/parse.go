// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bonial-oss/ransomstats/internal/types"
)

// ErrEmptyInput is returned when there is no payload to decode.
var ErrEmptyInput = errors.New("empty input")

// Parse decodes a groupvictims payload: a JSON array of victim objects.
// An object carrying an "error" or "message" field, which is how the API
// reports unknown groups, is returned as an error with that text.
func Parse(data []byte) ([]types.Victim, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	switch data[0] {
	case '[':
		var victims []types.Victim
		if err := json.Unmarshal(data, &victims); err != nil {
			return nil, fmt.Errorf("parsing victims: %w", err)
		}
		return victims, nil
	case '{':
		var probe struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("invalid JSON input: %w", err)
		}
		if probe.Error != "" {
			return nil, fmt.Errorf("API error: %s", probe.Error)
		}
		if probe.Message != "" {
			return nil, fmt.Errorf("API error: %s", probe.Message)
		}
		return nil, fmt.Errorf("unrecognized input format: expected a JSON array of victims")
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON input")
		}
		return nil, fmt.Errorf("unrecognized input format: expected a JSON array of victims")
	}
}

// Read returns the raw payload from path, or from stdin when path is "-".
func Read(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return data, nil
}
