package id

import "github.com/rs/xid"

// Generate returns a new globally unique, time-sortable ID.
func Generate() string {
	return xid.New().String()
}

func Valid(s string) bool {
	if s == "" {
		return false
	}

	id, err := xid.FromString(s)
	if err != nil {
		return false
	}
	return !id.IsNil() && !id.IsZero()
}
