package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validator tags declared on a request type. Request
// types wrap this in their Validate() methods together with any checks the
// tags cannot express.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
