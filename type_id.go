package kharcha

import (
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"
)

// ID identifies a category or a transaction. Identities are minted from the
// creation timestamp and never change afterwards.
//
// ID is the single canonical identifier type: every external input (form
// values, CLI flags, persisted data) is parsed into it at the boundary, so
// the engines only ever compare like with like.
type ID int64

var lastID atomic.Int64

// NewID mints a new identity from the current time, millisecond
// granularity. Two mints in the same millisecond still produce distinct
// ids.
func NewID() ID {
	now := time.Now().UnixMilli()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return ID(now)
		}
	}
}

func (id ID) IsZero() bool   { return id == 0 }
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses an identifier from external textual input.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(id))
}

// UnmarshalJSON accepts a JSON number or a numeric string. Older data
// files stored some identifiers as strings, so both spellings must load.
// Anything unparseable decodes to the zero ID, which matches nothing.
func (id *ID) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*id = ID(n)
			return nil
		}
	}
	*id = 0
	return nil
}
