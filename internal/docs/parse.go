package docs

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Table is one category section of a rendered document
type Table struct {
	Title    string
	Category envvars.Category
	Rows     []envvars.ConfigVariable
}

// Document is what Parse recovers from a rendered document: the category tables and
// the variable names the numbered steps refer to
type Document struct {
	Tables     []*Table
	References []string
}

func ParseFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Parse(b)
}

func Parse(src []byte) (*Document, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	doc := &Document{}

	var current *Table
	inSteps := false

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, src)

			switch node.Level {
			case 1, 2:
				current = nil
				inSteps = title == StepsHeading
			case 3:
				category, _ := envvars.CategoryFromTitle(title)
				current = &Table{Title: title, Category: category}
				doc.Tables = append(doc.Tables, current)
			}

			return ast.WalkSkipChildren, nil
		case *east.TableRow:
			if current == nil {
				return ast.WalkStop, fmt.Errorf("table row outside of a category section")
			}

			row, err := parseRow(node, src)
			if err != nil {
				return ast.WalkStop, fmt.Errorf("section %q: %w", current.Title, err)
			}

			row.Category = current.Category
			current.Rows = append(current.Rows, row)

			return ast.WalkSkipChildren, nil
		case *ast.List:
			if inSteps && node.IsOrdered() {
				doc.References = append(doc.References, references(node, src)...)
				return ast.WalkSkipChildren, nil
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func nodeText(n ast.Node, src []byte) string {
	return strings.TrimSpace(rawText(n, src))
}

func rawText(n ast.Node, src []byte) string {
	var b bytes.Buffer

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}

		return ast.WalkContinue, nil
	})

	return b.String()
}

// cellText returns the content of a table cell, a code span is taken verbatim
func cellText(cell ast.Node, src []byte) string {
	for c := cell.FirstChild(); c != nil; c = c.NextSibling() {
		if span, ok := c.(*ast.CodeSpan); ok {
			return rawText(span, src)
		}
	}

	return nodeText(cell, src)
}

func parseFlag(s string) (bool, error) {
	switch s {
	case flagOn:
		return true, nil
	case flagOff:
		return false, nil
	}

	return false, fmt.Errorf("unexpected flag value %q", s)
}

func parseRow(row *east.TableRow, src []byte) (envvars.ConfigVariable, error) {
	var cells []string

	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableCell); ok {
			cells = append(cells, cellText(c, src))
		}
	}

	if len(cells) != 5 {
		return envvars.ConfigVariable{}, fmt.Errorf("expected 5 columns, found %d", len(cells))
	}

	v := envvars.ConfigVariable{
		Name:    cells[0],
		Kind:    envvars.Kind(cells[1]),
		Example: cells[4],
	}

	var err error

	if v.Protected, err = parseFlag(cells[2]); err != nil {
		return v, fmt.Errorf("variable %q protected column: %w", v.Name, err)
	}

	if v.Masked, err = parseFlag(cells[3]); err != nil {
		return v, fmt.Errorf("variable %q masked column: %w", v.Name, err)
	}

	if v.Example == envvars.SecretPlaceholder {
		v.Example = ""
	}

	return v, nil
}

// references returns the upper-case variable names quoted as code inside n
func references(n ast.Node, src []byte) []string {
	var refs []string

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if span, ok := c.(*ast.CodeSpan); ok {
			name := nodeText(span, src)
			if envvars.ValidName(name) && name == strings.ToUpper(name) {
				refs = append(refs, name)
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return refs
}

// Catalog flattens the document tables into a catalog in document order
func (d *Document) Catalog() *envvars.Catalog {
	c := &envvars.Catalog{}

	for _, t := range d.Tables {
		c.Variables = append(c.Variables, t.Rows...)
	}

	return c
}

// Verify checks that secret rows are protected and masked and no other row is, that
// every variable is listed in exactly one table, and that every variable named in the
// steps is listed
func (d *Document) Verify() error {
	var result *multierror.Error

	tablesByName := map[string][]string{}
	var order []string

	for _, t := range d.Tables {
		if !t.Category.Valid() {
			result = multierror.Append(result, fmt.Errorf("section %q is not a known category", t.Title))
			continue
		}

		for _, row := range t.Rows {
			if _, ok := tablesByName[row.Name]; !ok {
				order = append(order, row.Name)
			}
			tablesByName[row.Name] = append(tablesByName[row.Name], t.Title)

			if err := envvars.VerifyVariable(row); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	for _, name := range order {
		if titles := tablesByName[name]; len(titles) > 1 {
			result = multierror.Append(result, fmt.Errorf("variable %q is listed %d times (%s)", name, len(titles), strings.Join(titles, ", ")))
		}
	}

	for _, ref := range d.References {
		if _, ok := tablesByName[ref]; !ok {
			result = multierror.Append(result, fmt.Errorf("steps reference %q which is not listed in any table", ref))
		}
	}

	return result.ErrorOrNil()
}
