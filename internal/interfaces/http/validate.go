package http

import (
	"fmt"

	"github.com/jhoicas/Libreta-api/pkg/validator"
)

// validateBody valida un DTO contra sus tags `validate` y devuelve un mensaje
// legible del primer campo inválido.
func validateBody(in interface{}) (string, bool) {
	fieldErrs := validator.ValidateStruct(in)
	if len(fieldErrs) == 0 {
		return "", true
	}
	fe := fieldErrs[0]
	if fe.Param != "" {
		return fmt.Sprintf("campo %s inválido (%s=%s)", fe.Field, fe.Tag, fe.Param), false
	}
	return fmt.Sprintf("campo %s inválido (%s)", fe.Field, fe.Tag), false
}
