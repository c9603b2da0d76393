package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakuda/seriesgen/internal/series"
)

func TestLines(t *testing.T) {
	id := series.Identifier{Prefix: "ebay", Category: "listing", Adjective: "x", Noun: "engine", Series: "blaze"}
	assert.Equal(t, "import ebayListingXEngineBlazeRouter from './ebay-listing-x-engine-blaze';", ImportLine(id))
	assert.Equal(t, "  app.use('/api/ebay-listing-x-engine-blaze', ebayListingXEngineBlazeRouter);", RegistrationLine(id))
}

func TestReadFragments_Missing(t *testing.T) {
	dir := t.TempDir()
	_, _, err := ReadFragments(dir, "demo")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ImportsFile("demo")), []byte("i\n"), 0o644))
	_, _, err = ReadFragments(dir, "demo")
	assert.ErrorContains(t, err, "registrations fragment")
}

func TestManifest_Digest(t *testing.T) {
	// BLAKE2b-256 of the empty input
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Digest(nil))
}
