package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/bastiangx/finglish/data"
	"github.com/bastiangx/finglish/internal/logger"
)

var (
	// ErrBadCount marks a frequency line whose count is not a non-negative integer.
	ErrBadCount = errors.New("invalid frequency count")
	// ErrMissingTranslation marks a dictionary line with no translation text.
	ErrMissingTranslation = errors.New("missing translation")
)

// maxLineSize bounds a single line of any data file.
const maxLineSize = 1 << 20

// Files names the five data files inside a data directory.
type Files struct {
	Beginning   string
	Middle      string
	Ending      string
	Frequencies string
	Dictionary  string
}

// DefaultFiles returns the stock file names.
func DefaultFiles() Files {
	return Files{
		Beginning:   "f2p-beginning.txt",
		Middle:      "f2p-middle.txt",
		Ending:      "f2p-ending.txt",
		Frequencies: "persian-word-freq.txt",
		Dictionary:  "f2p-dict.txt",
	}
}

// eachLine calls fn for every non-blank line of r with surrounding
// whitespace removed. lineNo is 1-based.
func eachLine(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ParseTable reads a position table: each non-blank line is a cluster
// followed by its forms. A later line for the same cluster replaces the
// earlier one.
func ParseTable(r io.Reader) (*Table, error) {
	t := &Table{forms: make(map[string][]Form)}
	err := eachLine(r, func(_ int, line string) error {
		fields := strings.Fields(line)
		t.set(fields[0], fields[1:])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFrequencies reads "word count" lines; lines starting with '#' are
// comments. Fields after the count are ignored.
func ParseFrequencies(r io.Reader) (*FrequencyIndex, error) {
	fi := newFrequencyIndex()
	err := eachLine(r, func(lineNo int, line string) error {
		if strings.HasPrefix(line, "#") {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: %q has no count: %w", lineNo, line, ErrBadCount)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			return fmt.Errorf("line %d: count %q: %w", lineNo, fields[1], ErrBadCount)
		}
		fi.add(fields[0], count)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fi.seal()
	return fi, nil
}

// ParseDictionary reads "finglish translation" lines. The line is split on
// its first whitespace run; the rest of the line is the translation.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]string)}
	err := eachLine(r, func(lineNo int, line string) error {
		cut := strings.IndexFunc(line, unicode.IsSpace)
		if cut < 0 {
			return fmt.Errorf("line %d: %q: %w", lineNo, line, ErrMissingTranslation)
		}
		word := line[:cut]
		d.entries[word] = strings.TrimSpace(line[cut:])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDefault loads the data files compiled into the binary.
func LoadDefault(ctx context.Context) (*Data, error) {
	return LoadFS(ctx, data.Files, DefaultFiles())
}

// LoadDir loads the data files from a directory on disk.
func LoadDir(ctx context.Context, dir string, files Files) (*Data, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to open data dir %s: %w", dir, err)
	}
	return LoadFS(ctx, os.DirFS(dir), files)
}

// LoadFS loads and parses the five data files from fsys concurrently.
// The first failure cancels the rest and is returned.
func LoadFS(ctx context.Context, fsys fs.FS, files Files) (*Data, error) {
	dictLog := logger.New("dict")
	loaded := &Data{}

	g, ctx := errgroup.WithContext(ctx)

	positions := []struct {
		pos  Position
		name string
	}{
		{Beginning, files.Beginning},
		{Middle, files.Middle},
		{Ending, files.Ending},
	}
	for _, p := range positions {
		g.Go(func() error {
			return loadFile(ctx, fsys, p.name, FormatTable, func(r io.Reader) error {
				t, err := ParseTable(r)
				if err != nil {
					return err
				}
				loaded.Tables[p.pos] = t
				dictLog.Debugf("Loaded %s table: %d clusters", p.pos, t.Len())
				return nil
			})
		})
	}

	g.Go(func() error {
		return loadFile(ctx, fsys, files.Frequencies, FormatFrequency, func(r io.Reader) error {
			fi, err := ParseFrequencies(r)
			if err != nil {
				return err
			}
			loaded.Frequencies = fi
			dictLog.Debugf("Loaded frequency list: %d words, max count %d", fi.Len(), fi.MaxCount())
			return nil
		})
	})

	g.Go(func() error {
		return loadFile(ctx, fsys, files.Dictionary, FormatDictionary, func(r io.Reader) error {
			d, err := ParseDictionary(r)
			if err != nil {
				return err
			}
			loaded.Dictionary = d
			dictLog.Debugf("Loaded dictionary: %d entries", d.Len())
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, format FileFormat, parse func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateFileFormat(fsys, name, format); err != nil {
		return err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("failed to parse %s (%s): %w", name, format, err)
	}
	return nil
}
