package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat is the kind of a data file.
type FileFormat int

const (
	FormatUnknown    FileFormat = iota
	FormatTable                 // cluster form1 form2 ...
	FormatFrequency             // word count, '#' comments
	FormatDictionary            // finglish translation text
)

// FormatInfo contains metadata about a data file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatTable: {
		Format:      FormatTable,
		Description: "Position Conversion Table",
		Extensions:  []string{".txt"},
		MinSize:     1, // a table with no clusters can never map anything
	},
	FormatFrequency: {
		Format:      FormatFrequency,
		Description: "Word Frequency List",
		Extensions:  []string{".txt"},
		MinSize:     0,
	},
	FormatDictionary: {
		Format:      FormatDictionary,
		Description: "Finglish Dictionary",
		Extensions:  []string{".txt"},
		MinSize:     0,
	},
}

// ErrUnknownFormat is returned for a FileFormat with no FormatInfo.
var ErrUnknownFormat = errors.New("unknown format")

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// ValidateFileFormat checks that name inside fsys looks like a file of the
// expected format before it is parsed.
func ValidateFileFormat(fsys fs.FS, name string, expectedFormat FileFormat) error {
	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, expectedFormat)
	}

	fileInfo, err := fs.Stat(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", name, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("file %s is a directory, expected %s", name, formatInfo.Description)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			name, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(path.Ext(name))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			name, ext, formatInfo.Description, formatInfo.Extensions)
	}

	log.Debugf("File %s validated as %s", name, formatInfo.Description)
	return nil
}
