package window

import "errors"

var (
	// ErrConfiguration is returned for missing window settings or an unknown url type.
	ErrConfiguration = errors.New("configuration error")

	// ErrAddressParse is returned when the window url or the proxy url is malformed.
	ErrAddressParse = errors.New("address parse error")

	// ErrWindowCreation is returned when the Creator refuses the request.
	ErrWindowCreation = errors.New("window creation error")
)
