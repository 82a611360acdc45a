package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/intervention-desk/internal/domain"
	apperrors "github.com/spec-kit/intervention-desk/pkg/util"
)

func TestBuiltinRoster(t *testing.T) {
	dir := New()
	assert.Equal(t, 12, dir.Size())

	people := dir.List()
	require.Len(t, people, 12)
	assert.Equal(t, "Ahmed Bennani", people[0].Name)

	for _, p := range people {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Status.Valid())
	}
}

func TestGetByID(t *testing.T) {
	dir := New()

	t.Run("Found", func(t *testing.T) {
		person, err := dir.GetByID("5")
		require.NoError(t, err)
		assert.Equal(t, "Youssef Idrissi", person.Name)
		assert.Equal(t, domain.PersonStatusOffline, person.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := dir.GetByID("999")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestListReturnsCopy(t *testing.T) {
	dir := New()
	people := dir.List()
	people[0].Name = "mutated"

	again := dir.List()
	assert.Equal(t, "Ahmed Bennani", again[0].Name)
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathUsesBuiltin", func(t *testing.T) {
		dir, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 12, dir.Size())
	})

	t.Run("YamlRoster", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		roster := `people:
  - id: "a1"
    name: "Test Person"
    role: "Analyste"
    department: "Support"
    status: "busy"
  - id: "a2"
    name: "Autre Personne"
    role: "Conseiller"
    department: "Support"
`
		require.NoError(t, os.WriteFile(path, []byte(roster), 0o600))

		dir, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, dir.Size())

		person, err := dir.GetByID("a1")
		require.NoError(t, err)
		assert.Equal(t, domain.PersonStatusBusy, person.Status)

		// Status defaults to available when omitted.
		person, err = dir.GetByID("a2")
		require.NoError(t, err)
		assert.Equal(t, domain.PersonStatusAvailable, person.Status)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte("people:\n  - id: \"x\"\n    name: \"X\"\n    status: \"away\"\n"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("EmptyRoster", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte("people: []\n"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
