// SPDX-License-Identifier: MIT
package tape

import (
	"fmt"
	"os"
)

// LoadSource reads the program text at path.
//
// A path that does not exist or is a directory is reported to r (when non-nil) & fails with
// ErrSourceUnavailable.
func LoadSource(path string, r Reporter) (source string, err error) {
	defer func() {
		if err != nil && r != nil {
			r.MissingSource(path)
		}
	}()

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		err = fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
		return
	}

	return string(content), nil
}
