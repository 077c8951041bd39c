package node

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const logFileName = "cyan.log"

// openLogger opens a file-backed structured logger inside the data dir.
func openLogger(dataDir string) (zerolog.Logger, closerFunc, error) {
	path := filepath.Join(dataDir, logFileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	logger := zerolog.New(zerolog.SyncWriter(file)).With().Timestamp().Logger()
	return logger, file.Close, nil
}
