package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Flags(t *testing.T) {
	cmd := Generate()

	assert.Equal(t, "generate [series] [start-phase]", cmd.Use)
	for _, name := range []string{
		"config", "dry-run", "no-ui", "no-splice", "mode", "lenient",
		"allow-duplicate", "metrics-file", "watch", "s3-bucket", "s3-prefix",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
	assert.Equal(t, "w", cmd.Flags().Lookup("watch").Shorthand)
}

func TestGenerate_Args(t *testing.T) {
	cmd := Generate()

	assert.NoError(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"blaze", "1521"}))
	assert.Error(t, cmd.Args(cmd, []string{"blaze", "1521", "x"}))
}

func TestGenerate_InvalidStartPhase(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"generate", "blaze", "first"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}

func TestSplice_Args(t *testing.T) {
	cmd := Splice()

	assert.Error(t, cmd.Args(cmd, []string{"blaze", "1"}))
	assert.NoError(t, cmd.Args(cmd, []string{"blaze", "1", "70"}))
}

func TestSplice_InvalidEndPhase(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"splice", "blaze", "1", "end"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid end phase "end"`)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "seriesgen.yaml", flag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("interactive"))
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestPlanAndSeries_JSONFlag(t *testing.T) {
	assert.NotNil(t, Plan().Flags().Lookup("json"))
	assert.NotNil(t, Series().Flags().Lookup("json"))
}
