package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

func writeTargetsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTargets(t *testing.T) {
	path := writeTargetsFile(t, "blog,keywords\n"+
		"a.tumblr.com,foo;bar\n"+
		"b.tumblr.com, baz \n")

	targets, err := LoadTargets(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.Target{
		{Blog: "a.tumblr.com", Keywords: []string{"foo", "bar"}},
		{Blog: "b.tumblr.com", Keywords: []string{"baz"}},
	}, targets)
}

func TestLoadTargetsSkipsInvalidRows(t *testing.T) {
	path := writeTargetsFile(t, "blog,keywords\n"+
		"not a hostname,foo\n"+ // invalid blog name
		"c.tumblr.com, ; \n"+ // no usable keywords
		"d.tumblr.com,ok\n")

	targets, err := LoadTargets(path)
	require.NoError(t, err)

	require.Len(t, targets, 1)
	assert.Equal(t, "d.tumblr.com", targets[0].Blog)
}

func TestLoadTargetsStripsBOM(t *testing.T) {
	path := writeTargetsFile(t, "\uFEFFblog,keywords\ne.tumblr.com,foo\n")

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
}

func TestLoadTargetsMissingFile(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
