package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySource(t *testing.T) {
	cases := []struct {
		source string
		want   sourceType
	}{
		{"https://example.com/owner/repo.git", sourceGit},
		{"git@example.com:owner/repo.git", sourceGit},
		{"http://example.com/docs/page", sourceWeb},
		{"https://example.com", sourceWeb},
		{"/home/dev/project", sourceLocal},
		{"relative/dir", sourceLocal},
	}
	for _, tc := range cases {
		// Clone URLs over https must win over plain web fetching.
		assert.Equal(t, tc.want, classifySource(tc.source), tc.source)
	}
}

func TestConfigValuesApplyToOptions(t *testing.T) {
	savedMode, savedThreads, savedPDF := modeName, numThreads, pdfOutputFile
	modeFlag := rootCmd.Flags().Lookup("mode")
	t.Cleanup(func() {
		modeName, numThreads, pdfOutputFile = savedMode, savedThreads, savedPDF
		require.NoError(t, modeFlag.Value.Set(modeFlag.DefValue))
		modeFlag.Changed = false
	})

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"mode = \"languages\"\nthreads = 3\npdf = \"cloud.pdf\"\n"), 0644))
	viper.SetConfigFile(cfgPath)
	require.NoError(t, viper.ReadInConfig())

	syncFlagsFromConfig()
	assert.Equal(t, modeLanguages, modeName)
	assert.Equal(t, 3, numThreads)
	assert.Equal(t, "cloud.pdf", pdfOutputFile)

	// An explicit command-line flag still beats the config file.
	require.NoError(t, rootCmd.Flags().Set("mode", modeCode))
	syncFlagsFromConfig()
	assert.Equal(t, modeCode, modeName)
	assert.Equal(t, 3, numThreads)
}
