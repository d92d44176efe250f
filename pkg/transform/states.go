package transform

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/atlas/pkg/domain"
)

// CapitalSentences formats "{capital} is the capital of {state}." for every state record.
func CapitalSentences(states []domain.Record) ([]string, error) {
	return MapErr(states, func(i int, r domain.Record) (string, error) {
		s, err := domain.DecodeState(r)
		if err != nil {
			return "", at(i, err)
		}
		return fmt.Sprintf("%s is the capital of %s.", s.Capital, s.Name), nil
	})
}

// WithCountry returns copies of the state records with country set to "USA".
// An existing country field is overwritten; the input is left untouched.
func WithCountry(states []domain.Record) []domain.Record {
	return Map(states, func(r domain.Record) domain.Record {
		c := r.Clone()
		c[domain.FieldCountry] = domain.CountryUSA
		return c
	})
}

// StateNames projects the state field of every record.
func StateNames(states []domain.Record) ([]string, error) {
	return MapErr(states, func(i int, r domain.Record) (string, error) {
		return field(i, r, domain.FieldState)
	})
}

// InitialHistogram counts states by the upper-cased first letter of their name.
// Only letters that occur are present in the result.
func InitialHistogram(states []domain.Record) (map[string]int, error) {
	initials, err := MapErr(states, func(i int, r domain.Record) (string, error) {
		name, err := field(i, r, domain.FieldState)
		if err != nil {
			return "", err
		}
		first, size := utf8.DecodeRuneInString(strings.TrimSpace(name))
		switch {
		case size == 0:
			return "", &domain.MissingFieldError{Index: i, Field: domain.FieldState, Reason: "empty name"}
		case first == utf8.RuneError && size == 1:
			return "", &domain.MissingFieldError{Index: i, Field: domain.FieldState, Reason: "invalid UTF-8"}
		}
		return string(unicode.ToUpper(first)), nil
	})
	if err != nil {
		return nil, err
	}

	return Reduce(initials, make(map[string]int), func(counts map[string]int, initial string) map[string]int {
		counts[initial]++
		return counts
	}), nil
}
