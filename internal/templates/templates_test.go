package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-tec/runner-fleet-provisioner/internal/constants"
)

func TestEmbeddedServesAllBootTemplates(t *testing.T) {
	source := Embedded()

	for _, name := range []string{
		constants.TemplateMacSetup,
		constants.TemplateLinuxSetup,
		constants.TemplateWindowsConfig,
	} {
		t.Run(name, func(t *testing.T) {
			body, err := source.Lookup(name)
			require.NoError(t, err)
			assert.NotEmpty(t, body)
		})
	}
}

func TestEmbeddedWindowsTemplateCarriesPlaceholders(t *testing.T) {
	body, err := Embedded().Lookup(constants.TemplateWindowsConfig)
	require.NoError(t, err)

	assert.Contains(t, body, "<STAGE>")
	assert.Contains(t, body, "<REPO>")
	assert.Contains(t, body, "<REGION>")
}

func TestLookupUnknownTemplate(t *testing.T) {
	_, err := Embedded().Lookup("no-such-template.sh")
	assert.ErrorContains(t, err, `unknown template "no-such-template.sh"`)
}

func TestDirOverridesTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.TemplateLinuxSetup), []byte("echo override\n"), 0o600))

	body, err := Dir(dir).Lookup(constants.TemplateLinuxSetup)
	require.NoError(t, err)
	assert.Equal(t, "echo override\n", body)
}
