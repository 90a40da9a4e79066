package api

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// リクエストDTOが使う独自タグをginのバリデータに登録します。
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	RegisterValidators(v)
}

// RegisterValidators adds the custom tags used by request DTOs:
//   - notblank: the string is not empty after trimming spaces
//   - csvlist: a comma-separated string with at least one non-blank item
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("csvlist", csvList)
}

func csvList(fl validator.FieldLevel) bool {
	for _, item := range strings.Split(fl.Field().String(), ",") {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}
