package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule describes how a single contact field is validated. Pattern and Custom
// run only when the field has a value; Required gates empty values.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Tag       string            // extra validator tag, e.g. "email"
	Pattern   *regexp.Regexp
	Custom    func(string) string // returns a message, empty when valid
	Message   string              // shape message used for Tag/Pattern failures
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)

// contactRules is the rule set for the checkout contact form.
var contactRules = map[string]Rule{
	"name": {
		Required:  true,
		MinLength: 2,
		MaxLength: 100,
	},
	"phone": {
		Required:  true,
		MinLength: 7,
		MaxLength: 20,
		Pattern:   phonePattern,
		Message:   "must be a valid phone number",
	},
	"email": {
		MaxLength: 254,
		Tag:       "email",
		Message:   "must be a valid email address",
	},
	"address": {
		MaxLength: 300,
	},
}

// FieldNames lists the validated contact fields in display order.
func FieldNames() []string {
	return []string{"name", "phone", "email", "address"}
}

type ruleEngine struct {
	validate *validator.Validate
	rules    map[string]Rule
}

func newRuleEngine(rules map[string]Rule) *ruleEngine {
	return &ruleEngine{
		validate: validator.New(),
		rules:    rules,
	}
}

// checkField validates one value against its rule and returns a shopper-facing
// message, or empty when the value passes.
func (e *ruleEngine) checkField(field, value string) string {
	rule, ok := e.rules[field]
	if !ok {
		return ""
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rule.Required {
			return "is required"
		}
		return ""
	}
	if rule.MinLength > 0 && len([]rune(trimmed)) < rule.MinLength {
		return fmt.Sprintf("must be at least %d characters", rule.MinLength)
	}
	if rule.MaxLength > 0 && len([]rune(trimmed)) > rule.MaxLength {
		return fmt.Sprintf("must be at most %d characters", rule.MaxLength)
	}
	if rule.Tag != "" {
		if err := e.validate.Var(trimmed, rule.Tag); err != nil {
			return shapeMessage(rule)
		}
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(trimmed) {
		return shapeMessage(rule)
	}
	if rule.Custom != nil {
		if msg := rule.Custom(trimmed); msg != "" {
			return msg
		}
	}
	return ""
}

// checkForm validates every field and returns field-keyed messages. An empty
// map means the form may be submitted.
func (e *ruleEngine) checkForm(values map[string]string) map[string]string {
	failures := make(map[string]string)
	for field := range e.rules {
		if msg := e.checkField(field, values[field]); msg != "" {
			failures[field] = msg
		}
	}
	return failures
}

func shapeMessage(rule Rule) string {
	if rule.Message != "" {
		return rule.Message
	}
	return "has an invalid format"
}
