package validator

import (
	"slices"
	"strings"

	"github.com/nicolasparada/smarttask/errs"
)

type Validator struct {
	Errors map[string][]string
}

func New() *Validator {
	return &Validator{
		Errors: map[string][]string{},
	}
}

func (v *Validator) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *Validator) First(field string) string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages[0]
	}
	return ""
}

func (v *Validator) All(field string) []string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages
	}
	return nil
}

func (v *Validator) Error() string {
	if !v.HasErrors() {
		return ""
	}

	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var sb strings.Builder
	for _, field := range fields {
		sb.WriteString(field + ": \n")
		for _, msg := range v.Errors[field] {
			sb.WriteString("\t- " + msg + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// ErrorKind reports validation failures as invalid arguments.
func (v *Validator) ErrorKind() errs.Kind {
	return errs.KindInvalidArgument
}

func (v *Validator) AsError() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
