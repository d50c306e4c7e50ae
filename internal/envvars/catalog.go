package envvars

import "sort"

// Catalog is an ordered set of variables, keyed by name
type Catalog struct {
	Name      string           `json:"name,omitempty"`
	Files     []string         `json:"files,omitempty"`
	Variables []ConfigVariable `json:"variables"`
}

// Group holds the variables of one category in catalog order
type Group struct {
	Category  Category
	Variables []ConfigVariable
}

func (c *Catalog) index(name string) int {
	for i, v := range c.Variables {
		if v.Name == name {
			return i
		}
	}

	return -1
}

// Set adds the variable, or replaces an existing variable of the same name in place
func (c *Catalog) Set(v ConfigVariable) {
	if i := c.index(v.Name); i >= 0 {
		c.Variables[i] = v
		return
	}

	c.Variables = append(c.Variables, v)
}

func (c *Catalog) Get(name string) (ConfigVariable, bool) {
	if i := c.index(name); i >= 0 {
		return c.Variables[i], true
	}

	return ConfigVariable{}, false
}

func (c *Catalog) Len() int {
	return len(c.Variables)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.Variables))
	for i, v := range c.Variables {
		names[i] = v.Name
	}

	return names
}

// Secrets returns the variables that are both protected and masked
func (c *Catalog) Secrets() []ConfigVariable {
	var secrets []ConfigVariable

	for _, v := range c.Variables {
		if v.Protected && v.Masked {
			secrets = append(secrets, v)
		}
	}

	return secrets
}

// Groups splits the catalog by category. Groups are ordered by category identifier,
// variables keep their catalog order.
func (c *Catalog) Groups() []Group {
	byCategory := map[Category][]ConfigVariable{}

	for _, v := range c.Variables {
		byCategory[v.Category] = append(byCategory[v.Category], v)
	}

	groups := make([]Group, 0, len(byCategory))
	for cat, vars := range byCategory {
		groups = append(groups, Group{Category: cat, Variables: vars})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })

	return groups
}

// OrderService returns the variable contract of the order service deployment
func OrderService() *Catalog {
	c := &Catalog{Name: "order-service"}

	for _, kv := range [][2]string{
		{"ENV", "dev"},
		{"DB_HOST", "postgres_container"},
		{"DB_PORT", "5432"},
		{"DB_USER", "order_user"},
		{"DB_NAME", "order_db"},
		{"POSTGRES_USER", "order_user"},
		{"POSTGRES_DB", "order_db"},
		{"KAFKA_BROKERS", "kafka:9092"},
		{"KAFKA_TOPIC", "orders"},
		{"KAFKA_GROUP", "order-service"},
		{"HTTP_ADDR", ":8080"},
		{"DB_PASSWORD", ""},
		{"POSTGRES_PASSWORD", ""},
	} {
		c.Set(NewVariable(kv[0], kv[1]))
	}

	return c
}
