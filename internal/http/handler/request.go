package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("barcode_type", func(fl validator.FieldLevel) bool {
		return model.BarcodeType(fl.Field().String()).Valid()
	})
	return v
}

// historyParams are the query parameters of GET /barcode/history.
type historyParams struct {
	Page   *int   `query:"page" validate:"omitempty,min=1,max=1000000"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Type   string `query:"type" validate:"omitempty,barcode_type"`
	Edited string `query:"edited"`
	SortBy string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt"`
}

// adminListParams are the query parameters of GET /admin/barcodes.
type adminListParams struct {
	UserID string `query:"userId" validate:"required,uuid"`
	Page   *int   `query:"page" validate:"omitempty,min=1,max=1000000"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
}

// editStatusRequest is the body of PATCH /admin/status/:id.
type editStatusRequest struct {
	Status *flexBool `json:"status" validate:"required"`
}

// flexBool accepts a JSON boolean or one of the strings true, false, 1, 0
// (case-insensitive, surrounding spaces ignored).
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = flexBool(t)
		return nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			*b = true
			return nil
		case "false", "0":
			*b = false
			return nil
		}
	}
	return errors.New("status must be a boolean")
}

// editedFilter maps the edited query value: empty is no filter, "true" is
// true and any other value is false.
func editedFilter(raw string) *bool {
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

func typeFilter(raw string) *model.BarcodeType {
	if raw == "" {
		return nil
	}
	t := model.BarcodeType(raw)
	return &t
}

func sortField(raw string) repository.SortField {
	if raw == string(repository.SortByUpdatedAt) {
		return repository.SortByUpdatedAt
	}
	return repository.SortByCreatedAt
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// parseID reads the :id path parameter and reports whether it is a UUID.
func parseID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// validationMessage renders the first failed rule of err.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return getValidationErrorMessage(verrs[0])
	}
	return "invalid request"
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "min":
		return err.Field() + " must be at least " + err.Param()
	case "max":
		return err.Field() + " must be at most " + err.Param()
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "uuid":
		return err.Field() + " must be a valid UUID"
	case "barcode_type":
		return err.Field() + " must be a valid barcode type"
	default:
		return err.Field() + " is invalid"
	}
}

// parseQuery binds and validates query parameters into dst. On failure it
// writes the 400 response and returns false.
func parseQuery(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.QueryParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "page and limit must be integers")
	}
	if err := validate.Struct(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
	}
	return true, nil
}
