package shift

import "errors"

var ErrTemplateNotFound = errors.New("shift template not found")
