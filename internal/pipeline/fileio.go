package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// copyBufferSize matches the read buffer feeding the encoders.
const copyBufferSize = 4096

// createNew opens path for writing with fail-if-exists semantics. The
// *os.PathError it returns on collision wraps os.ErrExist.
func createNew(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// ensureParentDir creates the destination's parent directories. Safe to
// race across workers: create-if-missing, already-exists is fine.
func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// copyVerbatim writes the remaining bytes of src to a newly created dst,
// failing if dst already exists.
func copyVerbatim(src io.Reader, dst string) error {
	out, err := createNew(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	return out.Close()
}

// copyFileIfMissing copies srcPath to dst, skipping silently when dst
// already exists. This tolerance is unique to the image fallback copy: it
// is a secondary artifact, so a pre-existing file is not an error.
func copyFileIfMissing(srcPath, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	if err := ensureParentDir(dst); err != nil {
		return err
	}
	err = copyVerbatim(src, dst)
	if err != nil && os.IsExist(err) {
		// Lost a race against an earlier run's leftover; still a skip.
		return nil
	}
	return err
}
