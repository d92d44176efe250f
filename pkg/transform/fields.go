package transform

import (
	"errors"

	"github.com/aretw0/atlas/pkg/domain"
)

// field reads a string field and stamps the record index onto any MissingFieldError.
func field(i int, r domain.Record, name string) (string, error) {
	s, err := r.String(name)
	return s, at(i, err)
}

func at(i int, err error) error {
	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		stamped := *mf
		stamped.Index = i
		return &stamped
	}
	return err
}
