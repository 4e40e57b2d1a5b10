package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectConfig_WriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := NewProjectConfig(12, "blog", []string{"staging", "production"})

	require.NoError(t, WriteProject(dir, cfg))

	loaded, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.ID)
	assert.Equal(t, "blog", loaded.Name)
	assert.Equal(t, []string{"production", "staging"}, loaded.EnvironmentNames())
	assert.True(t, loaded.HasEnvironment("staging"))
	assert.False(t, loaded.HasEnvironment("dev"))
}

func TestLoadProject_Missing(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestLoadProject_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "id: [", wantErr: "failed to unmarshal yaml"},
		{name: "missing id", content: "name: blog\n", wantErr: "id must be a positive integer"},
		{name: "missing name", content: "id: 3\n", wantErr: "name is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFileName), []byte(tt.content), 0o600))

			_, err := LoadProject(dir)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWriteProject_RejectsInvalid(t *testing.T) {
	err := WriteProject(t.TempDir(), &ProjectConfig{Name: "blog"})
	assert.Error(t, err)
}
