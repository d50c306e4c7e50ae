package envvars

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName returns true if name can be used as an environment variable key
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Verify checks every variable of the catalog and returns all violations at once
func Verify(c *Catalog) error {
	var result *multierror.Error

	seen := map[string]bool{}

	for i, v := range c.Variables {
		if v.Name == "" {
			result = multierror.Append(result, fmt.Errorf("variable #%d has no name", i+1))
			continue
		}

		if !ValidName(v.Name) {
			result = multierror.Append(result, fmt.Errorf("variable %q is not a valid environment variable name", v.Name))
		}

		if seen[v.Name] {
			result = multierror.Append(result, fmt.Errorf("variable %q is declared more than once", v.Name))
		}
		seen[v.Name] = true

		if err := VerifyVariable(v); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// VerifyVariable checks that the flags of a variable agree with its category
func VerifyVariable(v ConfigVariable) error {
	var result *multierror.Error

	if v.Kind != KindVariable && v.Kind != KindFile {
		result = multierror.Append(result, fmt.Errorf("variable %q has unknown type %q", v.Name, v.Kind))
	}

	if !v.Category.Valid() {
		result = multierror.Append(result, fmt.Errorf("variable %q has unknown category %q", v.Name, v.Category))
	}

	if v.IsSecret() {
		if !v.Protected || !v.Masked {
			result = multierror.Append(result, fmt.Errorf("secret %q must be protected and masked", v.Name))
		}

		if v.Example != "" {
			result = multierror.Append(result, fmt.Errorf("secret %q must not carry an example value", v.Name))
		}
	} else {
		if v.Protected || v.Masked {
			result = multierror.Append(result, fmt.Errorf("variable %q is protected or masked but is not in the %s category", v.Name, CategorySecret.Title()))
		}

		if v.Required && v.Example == "" {
			result = multierror.Append(result, fmt.Errorf("required variable %q has no example value", v.Name))
		}
	}

	return result.ErrorOrNil()
}

// ExpectCounts checks the number of unique names and of protected and masked secrets.
// A negative expectation is not checked.
func ExpectCounts(c *Catalog, total int, secrets int) error {
	var result *multierror.Error

	unique := map[string]bool{}
	uniqueSecrets := map[string]bool{}

	for _, v := range c.Variables {
		unique[v.Name] = true
	}

	for _, v := range c.Secrets() {
		uniqueSecrets[v.Name] = true
	}

	if total >= 0 && len(unique) != total {
		result = multierror.Append(result, fmt.Errorf("expected %d unique variables, found %d", total, len(unique)))
	}

	if secrets >= 0 && len(uniqueSecrets) != secrets {
		result = multierror.Append(result, fmt.Errorf("expected %d protected and masked variables, found %d", secrets, len(uniqueSecrets)))
	}

	return result.ErrorOrNil()
}
