package docs

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
)

// Diff reports where a parsed document has drifted from the catalog it should describe
func Diff(d *Document, c *envvars.Catalog) error {
	var result *multierror.Error

	documented := d.Catalog()

	for _, want := range c.Variables {
		got, ok := documented.Get(want.Name)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("variable %q is missing from the document", want.Name))
			continue
		}

		if got.Category != want.Category {
			result = multierror.Append(result, fmt.Errorf("variable %q is documented under %s, expected %s", want.Name, got.Category.Title(), want.Category.Title()))
		}

		if got.Protected != want.Protected || got.Masked != want.Masked {
			result = multierror.Append(result, fmt.Errorf("variable %q is documented as protected=%t masked=%t, expected protected=%t masked=%t",
				want.Name, got.Protected, got.Masked, want.Protected, want.Masked))
		}

		if !want.IsSecret() && got.Example != want.Example {
			result = multierror.Append(result, fmt.Errorf("variable %q is documented with example %q, expected %q", want.Name, got.Example, want.Example))
		}
	}

	for _, got := range documented.Variables {
		if _, ok := c.Get(got.Name); !ok {
			result = multierror.Append(result, fmt.Errorf("variable %q is documented but not part of the catalog", got.Name))
		}
	}

	return result.ErrorOrNil()
}
