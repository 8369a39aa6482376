package osfile

import (
	"os"

	"github.com/depp/later-darker/logger"
)

// MaxFileSize is the limit on file size when reading files into
// memory.
const MaxFileSize = 64 * 1024 * 1024

// ReadFile reads a file into memory. On failure it logs the error,
// with the file name escaped like any other attribute, and reports
// ok=false.
func ReadFile(path string) (data []byte, ok bool) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Error("Could not open file.",
			logger.String("file", path), logger.Err(err))
		return nil, false
	}
	if info.Size() > MaxFileSize {
		logger.Error("File is too large.",
			logger.String("file", path),
			logger.Int64("size", info.Size()),
			logger.Int("maxSize", MaxFileSize))
		return nil, false
	}
	data, err = os.ReadFile(path)
	if err != nil {
		logger.Error("Could not read file.",
			logger.String("file", path), logger.Err(err))
		return nil, false
	}
	return data, true
}
