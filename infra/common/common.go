package common

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// skipDirs never affect the API image.
var skipDirs = map[string]bool{
	".git":      true,
	"infra":     true,
	"_examples": true,
}

// GenerateHash fingerprints the build context so the image tag only changes
// when a source file does.
func GenerateHash(root string) (string, error) {
	var hash string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		fh, err := fileMd5Hash(path)
		if err != nil {
			return err
		}
		hash = appendHash(hash, fh)
		return nil
	})

	return hash, err
}

func fileMd5Hash(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func appendHash(hash1, hash2 string) string {
	h := md5.New()
	io.WriteString(h, hash1+hash2)
	return fmt.Sprintf("%x", h.Sum(nil))
}
