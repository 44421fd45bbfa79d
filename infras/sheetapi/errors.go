package sheetapi

import "errors"

var (
	// ErrUnexpectedStatus is returned when the sheet endpoint answers with a
	// non-2xx status.
	ErrUnexpectedStatus = errors.New("sheet api: unexpected status")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("sheet api: invalid response")
)
