package theme

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/painter/internal/ordered"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		// Names are table keys: surrounding whitespace is always an authoring slip.
		_ = v.RegisterValidation("ref", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && strings.TrimSpace(s) == s
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on every entry of the document. Name
// resolution is left to the resolver.
func Validate(t *Theme) error {
	if t == nil {
		return apperrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(t); err != nil {
		return convertValidationError(err, "")
	}

	if t.Application != nil {
		if err := v.Struct(t.Application); err != nil {
			return convertValidationError(err, "application")
		}
	}

	checks := []func() error{
		func() error { return validateTable(v, KindBorder, t.Borders) },
		func() error { return validateTable(v, KindContainer, t.Containers) },
		func() error { return validateTable(v, KindTooltip, t.Tooltips) },
		func() error { return validateTable(v, KindProgressBar, t.ProgressBars) },
		func() error { return validateComposite(v, KindButton, t.Buttons, ButtonLabels, Button.Slots) },
		func() error { return validateComposite(v, KindPaneGrid, t.PaneGrids, PaneGridLabels, PaneGrid.Slots) },
		func() error { return validateComposite(v, KindPicklist, t.Picklists, PicklistLabels, Picklist.Slots) },
		func() error {
			return validateComposite(v, KindPicklist, t.Picklists, []string{"menu"}, func(p Picklist) []Slot[PicklistMenu] {
				return []Slot[PicklistMenu]{p.Menu}
			})
		},
		func() error { return validateComposite(v, KindScrollable, t.Scrollables, ScrollableLabels, Scrollable.Slots) },
		func() error { return validateComposite(v, KindTextInput, t.TextInputs, TextInputLabels, TextInput.Slots) },
		func() error { return validateTable(v, KindTextInput, t.TextInputs) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func validateTable[V any](v *validator.Validate, kind Kind, table ordered.Map[V]) error {
	for name, entry := range table.All() {
		if strings.TrimSpace(name) == "" {
			return apperrors.NewValidationError(string(kind), "entry name cannot be empty", nil)
		}
		if err := v.Struct(entry); err != nil {
			return convertValidationError(err, fieldFor(string(kind), name))
		}
	}
	return nil
}

func validateComposite[E, S any](v *validator.Validate, kind Kind, table ordered.Map[E], labels []string, slots func(E) []Slot[S]) error {
	for name, entry := range table.All() {
		if strings.TrimSpace(name) == "" {
			return apperrors.NewValidationError(string(kind), "entry name cannot be empty", nil)
		}
		for i, slot := range slots(entry) {
			if slot.Kind != Defined {
				continue
			}
			if err := v.Struct(slot.Value); err != nil {
				return convertValidationError(err, fieldFor(string(kind), name, labels[i], "defined"))
			}
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors
// whose field is a dotted document path.
func convertValidationError(err error, prefix string) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve, prefix)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError, prefix string) string {
	parts := strings.Split(fe.Namespace(), ".")
	// Drop the struct type name the namespace starts with.
	if len(parts) > 1 {
		parts = parts[1:]
	}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, ".")
}

func fieldFor(parts ...string) string {
	return strings.Join(parts, ".")
}
