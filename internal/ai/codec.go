package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tolerant field coercions. LLM payloads routinely disagree with the
// requested schema on scalar shapes (numbers as strings, single values where
// arrays were asked for, invented identifiers), so each logical field type
// decodes through one of the coercion types below instead of the rigid
// encoding/json default. Each coercion is independent and never fails the
// surrounding decode; it degrades to a documented default instead.

// epochMillisThreshold disambiguates epoch seconds from milliseconds:
// anything above it is treated as milliseconds.
const epochMillisThreshold = 1e10

// flexString accepts a JSON string as-is, or a JSON number formatted as a
// string. Anything else decodes to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// flexFloat accepts a JSON number (integers widen) or a numeric string.
// Anything else decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = flexFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = flexFloat(v)
			return nil
		}
	}
	*f = 0
	return nil
}

// flexInt accepts a JSON number (floats truncate) or a numeric string.
// Anything else decodes to 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = flexInt(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = flexInt(v)
			return nil
		}
	}
	*f = 0
	return nil
}

// stringList accepts an array of strings (elements coerced through
// flexString), or a single bare value wrapped into a one-element list.
// Empty elements are dropped, so ["A", ""] decodes to ["A"]: an empty
// string carries no advice and would render as a blank bullet. Anything
// else decodes to an empty list.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var items []flexString
	if err := json.Unmarshal(data, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				out = append(out, string(item))
			}
		}
		*l = out
		return nil
	}
	var single flexString
	if err := json.Unmarshal(data, &single); err == nil && single != "" {
		*l = []string{string(single)}
		return nil
	}
	*l = []string{}
	return nil
}

// flexID accepts a canonical UUID string. A missing, malformed, or
// non-UUID value never fails the decode: a fresh identifier is synthesized
// instead, since vendor-emitted identifiers are not trustworthy.
type flexID uuid.UUID

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if id, err := uuid.Parse(s); err == nil {
			*f = flexID(id)
			return nil
		}
	}
	*f = flexID(uuid.New())
	return nil
}

// orNew returns the decoded identifier, synthesizing a fresh one when the
// field was absent from the payload.
func (f flexID) orNew() uuid.UUID {
	if uuid.UUID(f) == uuid.Nil {
		return uuid.New()
	}
	return uuid.UUID(f)
}

// parseFlexibleTime accepts a numeric epoch timestamp in seconds or
// milliseconds, or an ISO-8601 string with or without fractional seconds.
// Unlike the other coercions it reports failure, leaving the fallback to the
// caller.
func parseFlexibleTime(data []byte) (time.Time, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	var epoch float64
	if err := json.Unmarshal(data, &epoch); err == nil {
		if epoch > epochMillisThreshold {
			return time.UnixMilli(int64(epoch)).UTC(), nil
		}
		return time.Unix(int64(epoch), 0).UTC(), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %s", strings.TrimSpace(string(data)))
}
