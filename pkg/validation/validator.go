package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/profileurl"
)

// Result is the ordered list of messages produced by one validation call. An
// empty result means the data is valid.
type Result []string

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Summary renders every message at once, as shown to the user before any
// submission attempt.
func (r Result) Summary() string {
	if r.Valid() {
		return ""
	}
	return "Please fix the following errors:\n• " + strings.Join(r, "\n• ")
}

// Func validates a flat field map.
type Func func(data map[string]string) Result

// For returns the validator of a form type.
func For(formType model.FormType) (Func, error) {
	switch formType {
	case model.FormTypeResume:
		return Resume, nil
	case model.FormTypeCoverLetter:
		return CoverLetter, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownFormType, formType)
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail applies the loose local@domain.tld shape check.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// engine returns the shared validator with the form-specific tags registered.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
		_ = v.RegisterValidation("linkedin", func(fl validator.FieldLevel) bool {
			return profileurl.IsValid(profileurl.LinkedIn, fl.Field().String())
		})
		_ = v.RegisterValidation("github", func(fl validator.FieldLevel) bool {
			return profileurl.IsValid(profileurl.GitHub, fl.Field().String())
		})
		_ = v.RegisterValidation("portfolio", func(fl validator.FieldLevel) bool {
			return profileurl.IsValid(profileurl.Portfolio, fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Rule checks one field against a validator tag and yields Message on failure.
type Rule struct {
	Field   string
	Tag     string
	Message string
	// Trim measures the value without surrounding whitespace.
	Trim bool
}

// Required reports whether the rule rejects a blank value. Rules starting
// with omitempty only apply once the field is filled in.
func (r Rule) Required() bool {
	parts := strings.Split(r.Tag, ",")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "omitempty" {
		return false
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

func (r Rule) check(data map[string]string) (string, bool) {
	value := data[r.Field]
	if r.Trim {
		value = strings.TrimSpace(value)
	}
	if err := engine().Var(value, r.Tag); err != nil {
		return r.Message, false
	}
	return "", true
}

// Run evaluates rules in order, each contributing at most one message.
func Run(data map[string]string, rules []Rule) Result {
	var messages []string
	for _, rule := range rules {
		if msg, ok := rule.check(data); !ok {
			messages = append(messages, msg)
		}
	}
	return Result(normalizeMessages(messages))
}

// normalizeMessages trims messages and drops blanks and duplicates while
// preserving order.
func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
