package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesCommand(t *testing.T) {
	var out bytes.Buffer
	languagesCmd.SetOut(&out)
	t.Cleanup(func() { languagesCmd.SetOut(nil) })

	require.NoError(t, runLanguages(languagesCmd, nil))

	listing := out.String()
	assert.Contains(t, listing, "python (py)")
	assert.Contains(t, listing, "cpp (c++, cxx)")
	assert.Contains(t, listing, "css\n", "css has no aliases")
}
