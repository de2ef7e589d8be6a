package viewer

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput is returned for blank input
	ErrEmptyInput = errors.New("comic number is empty")

	// ErrInvalidNumber is returned for input that is not a positive integer
	ErrInvalidNumber = errors.New("comic number must be a positive integer")

	// ErrBusy is returned when a fetch is already in flight
	ErrBusy = errors.New("a comic is already loading")
)

// ParseComicNumber validates user input and returns the comic number
func ParseComicNumber(input string) (int, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, ErrEmptyInput
	}

	number, err := strconv.Atoi(text)
	if err != nil || number <= 0 {
		return 0, ErrInvalidNumber
	}
	return number, nil
}
