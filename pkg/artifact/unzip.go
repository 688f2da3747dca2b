package artifact

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// unzip extracts every entry of zipPath into destDir, preserving relative
// paths. Shell scripts get the owner execute bit even when the archive was
// built on a platform that dropped it.
func unzip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		mode := f.Mode()
		if strings.HasSuffix(f.Name, ".sh") {
			mode |= 0755
		}

		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
		if err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			out.Close()
			return err
		}

		_, err = io.Copy(out, rc)
		rc.Close()
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// entryPath joins an archive entry name under destDir and rejects entries
// that would escape it.
func entryPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, name)
	if target != destDir && !strings.HasPrefix(target, destDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return target, nil
}

// repairExecBits adds the execute bit to top-level payload files that look
// executable: ELF images and extensionless binaries. Archives produced on
// Windows routinely lose the bit.
func repairExecBits(appDir string) error {
	entries, err := os.ReadDir(appDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(name, ".") && !isELF(filepath.Join(appDir, name)) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&0111 != 0 {
			continue
		}
		if err := os.Chmod(filepath.Join(appDir, name), info.Mode()|0111); err != nil {
			return err
		}
	}
	return nil
}

func isELF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [4]byte
	n, _ := f.Read(header[:])
	return n == 4 && header[0] == 0x7F && header[1] == 'E' && header[2] == 'L' && header[3] == 'F'
}
