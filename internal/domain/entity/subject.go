// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SubjectID is the identity provider's numeric user id. Every id coming from a
// session, a route parameter or a provider payload is normalized into this type
// before it is compared.
type SubjectID int64

// ErrInvalidSubjectID is returned when an id is not a positive decimal integer.
var ErrInvalidSubjectID = errors.New("invalid subject id")

// ParseSubjectID normalizes a decimal string into a SubjectID.
func ParseSubjectID(raw string) (SubjectID, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSubjectID
	}

	return SubjectID(id), nil
}

func (id SubjectID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the id is unset.
func (id SubjectID) IsZero() bool {
	return id == 0
}

// MarshalJSON encodes the id as a decimal string so browsers never lose precision.
func (id SubjectID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts both the string and the numeric form.
func (id *SubjectID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := ParseSubjectID(asString)
		if err != nil {
			return err
		}
		*id = parsed

		return nil
	}

	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return errors.Wrap(err, "decode subject id")
	}
	if asNumber <= 0 {
		return ErrInvalidSubjectID
	}
	*id = SubjectID(asNumber)

	return nil
}
