// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package types

import "encoding/json"

// Victim is a single entry of the ransomware.live groupvictims feed.
// Only the fields the aggregation reads are decoded; the rest of the
// record is ignored.
type Victim struct {
	Discovered string `json:"discovered"`
	Activity   string `json:"activity"`
	Country    string `json:"country"`
}

// UnmarshalJSON decodes a Victim from JSON. Fields that are absent, null or
// not strings decode as the empty string.
func (v *Victim) UnmarshalJSON(data []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	v.Discovered = stringField(all, "discovered")
	v.Activity = stringField(all, "activity")
	v.Country = stringField(all, "country")

	return nil
}

func stringField(all map[string]json.RawMessage, key string) string {
	raw, ok := all[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
