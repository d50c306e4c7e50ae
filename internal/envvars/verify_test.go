package envvars

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violations(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		return nil
	}

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a multierror, got %T", err)

	msgs := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		msgs[i] = e.Error()
	}

	return msgs
}

func TestVerify(t *testing.T) {
	cases := []struct {
		Name      string
		Variables []ConfigVariable
		Errors    []string
	}{
		{
			Name: "accept a consistent catalog",
			Variables: []ConfigVariable{
				NewVariable("ENV", "dev"),
				NewVariable("DB_PASSWORD", ""),
			},
		},
		{
			Name: "reject duplicate names",
			Variables: []ConfigVariable{
				NewVariable("ENV", "dev"),
				NewVariable("ENV", "prod"),
			},
			Errors: []string{`variable "ENV" is declared more than once`},
		},
		{
			Name: "reject an unprotected secret",
			Variables: []ConfigVariable{
				{Name: "DB_PASSWORD", Kind: KindVariable, Category: CategorySecret, Masked: true},
			},
			Errors: []string{`secret "DB_PASSWORD" must be protected and masked`},
		},
		{
			Name: "reject a secret with a value",
			Variables: []ConfigVariable{
				{Name: "DB_PASSWORD", Kind: KindVariable, Category: CategorySecret, Protected: true, Masked: true, Example: "hunter2"},
			},
			Errors: []string{`secret "DB_PASSWORD" must not carry an example value`},
		},
		{
			Name: "reject a masked variable outside the secret category",
			Variables: []ConfigVariable{
				{Name: "DB_HOST", Kind: KindVariable, Category: CategoryDatabase, Example: "db", Masked: true, Required: true},
			},
			Errors: []string{`variable "DB_HOST" is protected or masked but is not in the Secrets category`},
		},
		{
			Name: "report every violation",
			Variables: []ConfigVariable{
				{Name: "", Kind: KindVariable, Category: CategoryGeneral},
				{Name: "1BAD", Kind: "Secret", Category: "misc"},
				{Name: "DB_HOST", Kind: KindVariable, Category: CategoryDatabase, Required: true},
			},
			Errors: []string{
				`variable #1 has no name`,
				`variable "1BAD" is not a valid environment variable name`,
				`variable "1BAD" has unknown type "Secret"`,
				`variable "1BAD" has unknown category "misc"`,
				`required variable "DB_HOST" has no example value`,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			err := Verify(&Catalog{Variables: c.Variables})

			assert.Equal(t, c.Errors, violations(t, err))
		})
	}
}

func TestExpectCounts(t *testing.T) {
	c := OrderService()

	assert.NoError(t, ExpectCounts(c, 13, 2))
	assert.NoError(t, ExpectCounts(c, -1, -1))

	assert.Equal(t, []string{
		"expected 12 unique variables, found 13",
		"expected 3 protected and masked variables, found 2",
	}, violations(t, ExpectCounts(c, 12, 3)))

	t.Run("count a secret declared twice once", func(t *testing.T) {
		dup := OrderService()
		password, _ := dup.Get("DB_PASSWORD")
		dup.Variables = append(dup.Variables, password)

		assert.NoError(t, ExpectCounts(dup, 13, 2))
	})
}
