package packaging

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrPackageNotFound       = errors.New("package not found")
	ErrPackageExists         = errors.New("package already exists")
)
