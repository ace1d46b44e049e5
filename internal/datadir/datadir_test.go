package datadir

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cv-studio", "cvstudio"},
		{"CV-Studio", "cvstudio"},
		{"jobforge", "jobforge"},
		{"StudyA", "studya"},
		{"MyTool", "mytool"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DirName(tt.in))
		})
	}
}

func TestDataDir_ExplicitBase(t *testing.T) {
	base := t.TempDir()

	got, err := DataDir(base, "jobforge")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, ".jobforge"), got)

	_, err = os.Stat(got)
	assert.True(t, os.IsNotExist(err), "DataDir must not create the directory")
}

func TestDataDir_DefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := DataDir("", "cv-studio")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cvstudio"), got)
}

func TestDataDir_EmptyProduct(t *testing.T) {
	_, err := DataDir(t.TempDir(), " ")
	require.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	base := t.TempDir()
	got, err := ConfigPath(base, "studya")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, ".studya", "config.json"), got)
}

func TestResolveStorageRoot_CreatesAndIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "home")

	first, err := ResolveStorageRoot(base, "jobforge")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, ".jobforge"), first)

	fi, err := os.Stat(first)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}

	second, err := ResolveStorageRoot(base, "jobforge")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveStorageRoot_FailsIfFileWithSameNameExists(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, ".jobforge"), []byte("x"), 0o600))

	_, err := ResolveStorageRoot(base, "jobforge")
	require.Error(t, err)
}

func TestInstalledProducts(t *testing.T) {
	base := t.TempDir()
	assert.Empty(t, InstalledProducts(base))

	_, err := ResolveStorageRoot(base, "jobforge")
	require.NoError(t, err)
	_, err = ResolveStorageRoot(base, "cv-studio")
	require.NoError(t, err)
	_, err = ResolveStorageRoot(base, "unlisted")
	require.NoError(t, err)

	assert.Equal(t, []string{"cv-studio", "cvstudio", "jobforge"}, InstalledProducts(base))
	assert.True(t, IsProductInstalled(base, "jobforge"))
	assert.False(t, IsProductInstalled(base, "aixam"))
}
