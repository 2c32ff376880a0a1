package config

import (
	"encoding/json"
	"fmt"
)

// UserConfig is the structured user-supplied configuration, a sparse set
// of recognized keys parsed from CLI flags or a JSON file. Pointer
// fields distinguish "absent" from an explicit zero value. The
// collection method travels out of band (a dedicated CLI flag, not the
// JSON document).
type UserConfig struct {
	LogLevel       *string         `json:"logLevel,omitempty"`
	ScrapeInterval *FlexibleString `json:"scrapeInterval,omitempty"`
	TurnOffScrape  *bool           `json:"turnOffScrape,omitempty"`
	Syscalls       []string        `json:"syscalls,omitempty"`
	TLSConfig      json.RawMessage `json:"tlsConfig,omitempty"`

	// CollectionMethod is set from the -collection-method flag. Empty
	// leaves the compiled-in default untouched.
	CollectionMethod string `json:"-"`
}

// FlexibleString is a string that also unmarshals from a bare JSON
// number, so {"scrapeInterval": 30} and {"scrapeInterval": "30"} read
// the same.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*s = FlexibleString(value)
		return nil
	case float64:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*s = FlexibleString(n.String())
		return nil
	default:
		return fmt.Errorf("expected string or number, got %T", v)
	}
}

func (s FlexibleString) String() string {
	return string(s)
}
