package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gov-comms/activity-tracker/internal/domain"
	apperrors "github.com/gov-comms/activity-tracker/pkg/errors"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

// Policy decides what a response-contract violation does to the request
type Policy string

const (
	// PolicyStrict fails the request on a contract violation
	PolicyStrict Policy = "strict"
	// PolicyAdvisory logs the violation and lets the response through.
	// Pre-production environments fail open so mapping gaps do not
	// block development.
	PolicyAdvisory Policy = "advisory"
)

// PolicyForEnvironment derives the default policy from the runtime
// environment: production is strict, everything else advisory
func PolicyForEnvironment(environment string) Policy {
	if environment == "production" {
		return PolicyStrict
	}
	return PolicyAdvisory
}

// ParsePolicy converts a config value to a Policy, falling back to the
// environment-derived default when the value is empty or unrecognized
func ParsePolicy(value, environment string) Policy {
	switch Policy(strings.ToLower(value)) {
	case PolicyStrict:
		return PolicyStrict
	case PolicyAdvisory:
		return PolicyAdvisory
	default:
		return PolicyForEnvironment(environment)
	}
}

// Validator checks mapped activity responses against the contract
type Validator struct {
	validate *validator.Validate
	policy   Policy
	log      *logger.Logger
}

// New creates a response validator with the given policy
func New(policy Policy, log *logger.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations by wire name, not Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v, policy: policy, log: log}
}

// Policy returns the active validation policy
func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate checks a mapped response against the contract. Under the
// strict policy a violation is returned as a transformation error;
// under the advisory policy it is logged with the activity id and the
// offending field paths, and nil is returned.
func (v *Validator) Validate(resp *domain.ActivityResponse) error {
	err := v.validate.Struct(resp)
	if err == nil {
		return nil
	}

	paths := FieldPaths(err)

	if v.policy == PolicyAdvisory {
		v.log.WithFields(map[string]interface{}{
			"activity_id": resp.ID,
			"fields":      paths,
		}).Warn("Activity response failed schema validation")
		return nil
	}

	return apperrors.NewTransformationError(
		fmt.Sprintf("activity response for #%d violates schema: %s", resp.ID, strings.Join(paths, ", ")),
		err,
	)
}

// FieldPaths extracts every violating field path from a validator error
func FieldPaths(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	paths := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		paths = append(paths, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return paths
}
