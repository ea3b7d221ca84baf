package identity

import "github.com/go-playground/validator/v10"

// RegisterValidations installs the identity-number rules on a validator
// instance so request structs can tag fields with `dni_nie` or `cif`.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("dni_nie", func(fl validator.FieldLevel) bool {
		return ValidateDNIOrNIE(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("cif", func(fl validator.FieldLevel) bool {
		return ValidateCIFOrNIF(fl.Field().String())
	})
}
