package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func createTree(t *testing.T, root string, files map[string]string) {
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func contestNames(contests []*Contest) []string {
	var result []string
	for _, c := range contests {
		result = append(result, c.Name)
	}
	return result
}

func TestScanContests(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, map[string]string{
		"Round2/A-foo.cpp":         "foo",
		"Round1/notes.cpp":         "notes",
		"Round1/B-hard.cpp":        "hard",
		"Round1/A-easy.cpp":        "easy",
		"Round1/A-easy.py":         "not a problem",
		"Round1/README":            "",
		"Round1/nested/C-deep.cpp": "ignored",
		"Round10/C.cpp":            "",
		"loose.cpp":                "file in root is not a contest",
	})
	require.NoError(t, os.Mkdir(filepath.Join(root, "Empty"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "Round1", "D.cpp"), 0755))

	contests, err := ScanContests(root)
	require.NoError(t, err)
	require.Equal(t, []string{"Empty", "Round1", "Round10", "Round2"}, contestNames(contests))

	empty := contests[0]
	require.Empty(t, empty.Files())

	round1 := contests[1]
	require.Equal(t, filepath.Join(root, "Round1"), round1.Path)
	require.Equal(t, []string{"A-easy.cpp"}, names(round1.Group('A')))
	require.Equal(t, []string{"B-hard.cpp"}, names(round1.Group('B')))
	require.Empty(t, round1.Group('C'))
	require.Empty(t, round1.Group('D'))
	require.Equal(t, []string{"notes.cpp"}, names(round1.Unlabeled))
	require.Equal(t, filepath.Join(root, "Round1", "A-easy.cpp"), round1.Group('A')[0].Path)

	require.Equal(t, []string{"A-foo.cpp"}, names(contests[3].Group('A')))
}

func TestScanOrder(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, map[string]string{
		"c/A2.cpp":    "",
		"c/A10.cpp":   "",
		"c/A1.cpp":    "",
		"c/Ab.cpp":    "",
		"c/AB.cpp":    "",
		"c/z.cpp":     "",
		"c/1.cpp":     "",
		"b/A.cpp":     "",
		"B/A.cpp":     "",
		"a b/A.cpp":   "",
		"a_b/A.cpp":   "",
		"a-b/A.cpp":   "",
		"a.b/A.cpp":   "",
		"a+b/A.cpp":   "",
		"a%20b/A.cpp": "",
	})

	first, err := ScanContests(root)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "a b", "a%20b", "a+b", "a-b", "a.b", "a_b", "b", "c"}, contestNames(first))

	c := FindContest(first, "c")
	require.NotNil(t, c)
	require.Equal(t, []string{"A1.cpp", "A10.cpp", "A2.cpp", "AB.cpp", "Ab.cpp"}, names(c.Group('A')))
	require.Equal(t, []string{"1.cpp", "z.cpp"}, names(c.Unlabeled))

	second, err := ScanContests(root)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestScanSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	createTree(t, outside, map[string]string{
		"Shared/A.cpp": "a",
		"B-linked.cpp": "b",
	})
	createTree(t, root, map[string]string{
		"Round1/A.cpp": "",
	})
	require.NoError(t, os.Symlink(filepath.Join(outside, "Shared"), filepath.Join(root, "Shared")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "B-linked.cpp"), filepath.Join(root, "Round1", "B-linked.cpp")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "absent.cpp"), filepath.Join(root, "Round1", "C-broken.cpp")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "absent"), filepath.Join(root, "Broken")))

	contests, err := ScanContests(root)
	require.NoError(t, err)
	require.Equal(t, []string{"Round1", "Shared"}, contestNames(contests))
	require.Equal(t, []string{"A.cpp", "B-linked.cpp"}, names(contests[0].Files()))
	require.Equal(t, []string{"A.cpp"}, names(contests[1].Files()))
}

func TestScanErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := ScanContests(filepath.Join(t.TempDir(), "absent"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("root is file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(root, nil, 0644))
		_, err := ScanContests(root)
		require.Error(t, err)
	})

	t.Run("empty root", func(t *testing.T) {
		contests, err := ScanContests(t.TempDir())
		require.NoError(t, err)
		require.Empty(t, contests)
	})
}
