// Package source loads input buffers, maps byte offsets to line and
// column positions, and watches files for changes.
package source

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sexptree.source")

// Load reads the file at path.
func Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debugf("loaded %s (%d bytes)", path, len(data))
	return data, nil
}
