package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"deckofcards/internal/util"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var funcCount = make(map[string]int)

// ValidateSnapshot compares obj, encoded as indented JSON, against testdata/<func>-<call>.json.
// A missing snapshot file, or UPDATE_SNAPSHOTS=1, writes the file instead.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := snapshotFilename(1 + depth)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if err != nil || util.Getenv("UPDATE_SNAPSHOTS", "") == "1" {
		if err != nil && !os.IsNotExist(err) {
			require.NoError(t, err)
		}

		write(t, filename, objJSON)
		return
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func snapshotFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip + 1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, objJSON []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, append(objJSON, '\n'), 0644)) // nolint:gosec
}
