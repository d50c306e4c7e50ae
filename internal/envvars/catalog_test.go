package envvars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderService(t *testing.T) {
	c := OrderService()

	t.Run("list every variable once", func(t *testing.T) {
		assert.Equal(t, []string{
			"ENV",
			"DB_HOST",
			"DB_PORT",
			"DB_USER",
			"DB_NAME",
			"POSTGRES_USER",
			"POSTGRES_DB",
			"KAFKA_BROKERS",
			"KAFKA_TOPIC",
			"KAFKA_GROUP",
			"HTTP_ADDR",
			"DB_PASSWORD",
			"POSTGRES_PASSWORD",
		}, c.Names())

		assert.NoError(t, ExpectCounts(c, 13, 2))
	})

	t.Run("flag only the passwords as protected and masked", func(t *testing.T) {
		var names []string
		for _, v := range c.Secrets() {
			names = append(names, v.Name)
		}

		assert.Equal(t, []string{"DB_PASSWORD", "POSTGRES_PASSWORD"}, names)

		for _, v := range c.Variables {
			if v.IsSecret() {
				continue
			}

			assert.False(t, v.Protected, v.Name)
			assert.False(t, v.Masked, v.Name)
		}
	})

	t.Run("pass verification", func(t *testing.T) {
		assert.NoError(t, Verify(c))
	})

	t.Run("group into the documented categories", func(t *testing.T) {
		groups := c.Groups()

		got := map[Category][]string{}
		var order []Category

		for _, g := range groups {
			order = append(order, g.Category)
			for _, v := range g.Variables {
				got[g.Category] = append(got[g.Category], v.Name)
			}
		}

		assert.Equal(t, []Category{CategoryConfig, CategoryDatabase, CategoryGeneral, CategorySecret}, order)
		assert.Equal(t, map[Category][]string{
			CategoryConfig:   {"ENV"},
			CategoryDatabase: {"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME", "POSTGRES_USER", "POSTGRES_DB"},
			CategoryGeneral:  {"KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP", "HTTP_ADDR"},
			CategorySecret:   {"DB_PASSWORD", "POSTGRES_PASSWORD"},
		}, got)
	})
}

func TestCatalogSet(t *testing.T) {
	c := &Catalog{}

	c.Set(NewVariable("A", "1"))
	c.Set(NewVariable("B", "2"))
	c.Set(NewVariable("A", "3"))

	assert.Equal(t, []string{"A", "B"}, c.Names())

	v, ok := c.Get("A")
	assert.True(t, ok)
	assert.Equal(t, "3", v.Example)

	_, ok = c.Get("C")
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	c := OrderService()
	c.Files = []string{".env"}

	s := c.Summary()

	assert.Equal(t, []string{".env"}, s.EnvFiles)
	assert.Equal(t, 13, s.TotalVars)
	assert.Equal(t, 2, s.SensitiveVars)
	assert.Equal(t, 1, s.RequiredVars)
	assert.Len(t, s.Variables, 13)

	empty := (&Catalog{}).Summary()
	assert.Equal(t, []string{}, empty.EnvFiles)
	assert.Equal(t, []ConfigVariable{}, empty.Variables)
}
