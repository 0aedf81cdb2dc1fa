package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dist/internal/adapters/fs"
	"go.trai.ch/dist/internal/core/domain"
)

func TestInstalledStore_List(t *testing.T) {
	// home/
	//   distributions/
	//     1.0.0/
	//     2.0.0/
	//     .partial/
	//     README
	//     linked -> ../elsewhere
	//     broken -> ../missing
	//   elsewhere/
	layout := domain.NewLayout(t.TempDir())
	dists := layout.DistributionsDir()

	for _, dir := range []string{"1.0.0", "2.0.0", ".partial"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dists, dir), domain.DirPerm))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(layout.Home, "elsewhere"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dists, "README"), []byte("notes"), domain.FilePerm))
	require.NoError(t, os.Symlink(filepath.Join("..", "elsewhere"), filepath.Join(dists, "linked")))
	require.NoError(t, os.Symlink(filepath.Join("..", "missing"), filepath.Join(dists, "broken")))

	versions, err := fs.NewInstalledStore(layout).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0.0", "2.0.0", "linked"}, versions)
}

func TestInstalledStore_List_MissingDir(t *testing.T) {
	store := fs.NewInstalledStore(domain.NewLayout(filepath.Join(t.TempDir(), "absent")))

	versions, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, versions)
	assert.NotNil(t, versions)
}

func TestInstalledStore_List_NotADirectory(t *testing.T) {
	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, os.WriteFile(layout.DistributionsDir(), []byte("oops"), domain.FilePerm))

	_, err := fs.NewInstalledStore(layout).List(context.Background())
	require.ErrorContains(t, err, "failed to read distributions directory")
}

func TestInstalledStore_List_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewInstalledStore(domain.NewLayout(t.TempDir())).List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSymlinkLinker_LinkTarget(t *testing.T) {
	layout := domain.NewLayout(filepath.Join(t.TempDir(), "home"))
	linker := fs.NewSymlinkLinker(layout)
	ctx := context.Background()

	target, err := linker.Target(ctx)
	require.NoError(t, err)
	assert.Empty(t, target)

	require.NoError(t, linker.Link(ctx, "1.0.0"))
	target, err = linker.Target(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", target)

	dest, err := os.Readlink(layout.CurrentLink())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(domain.DistributionsDirName, "1.0.0"), dest)

	require.NoError(t, linker.Link(ctx, "2.0.0"))
	target, err = linker.Target(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", target)

	entries, err := os.ReadDir(layout.Home)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary links must not be left behind")
	assert.Equal(t, domain.CurrentLinkName, entries[0].Name())
}

func TestSymlinkLinker_LinkResolvesToDistribution(t *testing.T) {
	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.DistributionDir("1.0.0"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(layout.DistributionDir("1.0.0"), "VERSION"), []byte("1.0.0"), domain.FilePerm))

	require.NoError(t, fs.NewSymlinkLinker(layout).Link(context.Background(), "1.0.0"))

	content, err := os.ReadFile(filepath.Join(layout.CurrentLink(), "VERSION"))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", string(content))
}

func TestSymlinkLinker_Unlink(t *testing.T) {
	layout := domain.NewLayout(t.TempDir())
	linker := fs.NewSymlinkLinker(layout)
	ctx := context.Background()

	require.NoError(t, linker.Unlink(ctx), "removing a missing link is not an error")

	require.NoError(t, linker.Link(ctx, "1.0.0"))
	require.NoError(t, linker.Unlink(ctx))

	_, err := os.Lstat(layout.CurrentLink())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSymlinkLinker_Target_NotALink(t *testing.T) {
	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, os.WriteFile(layout.CurrentLink(), []byte("file"), domain.FilePerm))

	_, err := fs.NewSymlinkLinker(layout).Target(context.Background())
	require.ErrorContains(t, err, "failed to read current link")
}
