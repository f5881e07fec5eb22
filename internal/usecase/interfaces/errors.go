package interfaces

import "errors"

// ErrAlreadyExists is returned (possibly wrapped) by repository Create
// methods when the key is already stored, including when another instance
// won a concurrent create.
var ErrAlreadyExists = errors.New("already exists")
