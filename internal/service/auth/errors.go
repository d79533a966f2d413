package auth

import "errors"

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. The two cases are deliberately indistinguishable so that a
// caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")
