package envvars

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// DotenvFiles are the file names looked up by Discover, in lookup order
var DotenvFiles = []string{
	".env",
	".env.example",
	".env.local",
	".env.development",
	".env.production",
	".env.test",
}

// Discover builds a catalog from the dotenv files found in dir. A file that fails to parse
// is skipped as a whole and reported in the returned error; the catalog holds everything else.
func Discover(dir string) (*Catalog, error) {
	catalog := &Catalog{Name: filepath.Base(dir)}

	var result *multierror.Error

	for _, name := range DotenvFiles {
		p := filepath.Join(dir, name)

		f, err := os.Open(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		parsed := &Catalog{}

		err = ParseDotenv(f, name, parsed)
		f.Close()

		if err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to parse %s: %w", p, err))
			continue
		}

		for _, v := range parsed.Variables {
			catalog.Set(v)
		}

		catalog.Files = append(catalog.Files, name)
	}

	return catalog, result.ErrorOrNil()
}

// ParseDotenv reads KEY=VALUE lines from r into catalog. Blank lines, comments and lines
// without an assignment are ignored. Later assignments replace earlier ones in place.
func ParseDotenv(r io.Reader, source string, catalog *Catalog) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}

		kv, err := godotenv.Unmarshal(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		for key, value := range kv {
			v := NewVariable(key, value)
			v.Source = source
			v.Line = lineNum

			catalog.Set(v)
		}
	}

	return scanner.Err()
}
