// Package envvars models the environment variable contract a service expects
// to find in its CI/CD platform settings: which names exist, how they are
// grouped, and which of them are protected and masked secrets.
package envvars

import "sort"

type Kind string

const (
	KindVariable Kind = "Variable"
	KindFile     Kind = "File"
)

type Category string

const (
	CategoryCI       Category = "ci"
	CategoryConfig   Category = "config"
	CategoryDatabase Category = "database"
	CategoryGeneral  Category = "general"
	CategoryPort     Category = "port"
	CategorySecret   Category = "secret"
	CategoryURL      Category = "url"
)

// SecretPlaceholder is shown wherever a secret's value would otherwise appear
const SecretPlaceholder = "<SET_YOUR_VALUE>"

var categoryTitles = map[Category]string{
	CategorySecret:   "Secrets",
	CategoryDatabase: "Database",
	CategoryURL:      "URL endpoints",
	CategoryConfig:   "Configuration",
	CategoryCI:       "CI/CD",
	CategoryPort:     "Ports",
	CategoryGeneral:  "Common",
}

var categoryIcons = map[Category]string{
	CategorySecret:   "🔒",
	CategoryDatabase: "🗄️",
	CategoryURL:      "🔗",
	CategoryConfig:   "⚙️",
	CategoryCI:       "🔄",
	CategoryPort:     "🔌",
	CategoryGeneral:  "📋",
}

// Title returns the display name of the category
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}

	return string(c)
}

// Icon returns the emoji used in front of the category title in rendered documents
func (c Category) Icon() string {
	return categoryIcons[c]
}

func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Categories returns every known category ordered by identifier
func Categories() []Category {
	cats := make([]Category, 0, len(categoryTitles))
	for c := range categoryTitles {
		cats = append(cats, c)
	}

	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	return cats
}

// CategoryFromTitle maps a display title back to its category. Leading icons are ignored.
func CategoryFromTitle(title string) (Category, bool) {
	for c, t := range categoryTitles {
		if title == t || hasSuffixWord(title, t) {
			return c, true
		}
	}

	return "", false
}

func hasSuffixWord(s, suffix string) bool {
	if len(s) <= len(suffix) || s[len(s)-len(suffix):] != suffix {
		return false
	}

	return s[len(s)-len(suffix)-1] == ' '
}

// ConfigVariable describes a single variable an operator has to configure
type ConfigVariable struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind,omitempty"`
	Protected   bool     `json:"protected"`
	Masked      bool     `json:"masked"`
	Example     string   `json:"example,omitempty"`
	Category    Category `json:"category,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`

	Source string `json:"source,omitempty"`
	Line   int    `json:"line,omitempty"`
}

// NewVariable classifies name and derives the flags of the resulting variable.
// The value of a sensitive variable is dropped.
func NewVariable(name string, value string) ConfigVariable {
	sensitive := IsSensitive(name)

	v := ConfigVariable{
		Name:      name,
		Kind:      KindVariable,
		Protected: sensitive,
		Masked:    sensitive,
		Category:  Classify(name),
		Required:  IsRequired(name),
	}

	if !sensitive {
		v.Example = value
	}

	return v
}

// IsSecret reports whether the variable must be kept out of logs and unprotected pipelines
func (v ConfigVariable) IsSecret() bool {
	return v.Category == CategorySecret
}

// DisplayExample returns the example as it may be shown to a reader
func (v ConfigVariable) DisplayExample() string {
	if v.IsSecret() || v.Masked {
		return SecretPlaceholder
	}

	return v.Example
}
