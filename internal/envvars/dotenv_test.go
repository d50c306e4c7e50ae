package envvars

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParseDotenv(t *testing.T) {
	t.Run("skip comments, blank lines and lines without an assignment", func(t *testing.T) {
		c := &Catalog{}

		err := ParseDotenv(strings.NewReader(`# order service

ENV=dev
not an assignment
DB_HOST = "postgres_container"
HTTP_ADDR=':8080'
`), ".env", c)
		require.NoError(t, err)

		assert.Equal(t, []string{"ENV", "DB_HOST", "HTTP_ADDR"}, c.Names())

		host, _ := c.Get("DB_HOST")
		assert.Equal(t, "postgres_container", host.Example)
		assert.Equal(t, ".env", host.Source)
		assert.Equal(t, 5, host.Line)

		addr, _ := c.Get("HTTP_ADDR")
		assert.Equal(t, ":8080", addr.Example)
	})

	t.Run("never keep the value of a secret", func(t *testing.T) {
		c := &Catalog{}

		require.NoError(t, ParseDotenv(strings.NewReader("DB_PASSWORD=s3cr3t\n"), ".env", c))

		v, ok := c.Get("DB_PASSWORD")
		assert.True(t, ok)
		assert.Equal(t, "", v.Example)
		assert.True(t, v.Protected)
		assert.True(t, v.Masked)
	})
}

func TestDiscover(t *testing.T) {
	t.Run("merge files in lookup order keeping first positions", func(t *testing.T) {
		dir := t.TempDir()

		writeFile(t, dir, ".env", "ENV=dev\nKAFKA_TOPIC=orders\n")
		writeFile(t, dir, ".env.production", "ENV=prod\nKAFKA_GROUP=order-service\n")
		writeFile(t, dir, "unrelated.env", "IGNORED=1\n")

		c, err := Discover(dir)
		require.NoError(t, err)

		assert.Equal(t, []string{".env", ".env.production"}, c.Files)
		assert.Equal(t, []string{"ENV", "KAFKA_TOPIC", "KAFKA_GROUP"}, c.Names())

		env, _ := c.Get("ENV")
		assert.Equal(t, "prod", env.Example)
		assert.Equal(t, ".env.production", env.Source)
	})

	t.Run("return an empty catalog when there are no dotenv files", func(t *testing.T) {
		c, err := Discover(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Files)
	})

	t.Run("skip a file that cannot be parsed and keep the rest", func(t *testing.T) {
		dir := t.TempDir()

		writeFile(t, dir, ".env", "ENV=dev\n")
		writeFile(t, dir, ".env.local", "BROKEN=\"unterminated\n")

		c, err := Discover(dir)
		assert.Error(t, err)

		assert.Equal(t, []string{".env"}, c.Files)
		assert.Equal(t, []string{"ENV"}, c.Names())
	})

	t.Run("leave no variables behind from a file that fails partway", func(t *testing.T) {
		dir := t.TempDir()

		writeFile(t, dir, ".env", "DB_HOST=localhost\nBROKEN=\"unterminated\nKAFKA_TOPIC=orders\n")
		writeFile(t, dir, ".env.example", "ENV=dev\n")

		c, err := Discover(dir)
		assert.Error(t, err)

		assert.Equal(t, []string{".env.example"}, c.Files)
		assert.Equal(t, []string{"ENV"}, c.Names())

		env, _ := c.Get("ENV")
		assert.Equal(t, ".env.example", env.Source)
		assert.Equal(t, 1, env.Line)
	})
}
