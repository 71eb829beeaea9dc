// Package cli reads Finglish from the terminal and prints ranked Persian
// candidates, one per line as "confidence text".
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/finglish/internal/utils"
	"github.com/bastiangx/finglish/pkg/convert"
)

// Prompt is written before every line read.
const Prompt = "finglish: "

// Interactive mode commands.
const (
	statsCommand = ":stats"
	wordsCommand = ":words"
)

// wordsLimit caps the :words listing.
const wordsLimit = 20

// InputHandler prompts for a phrase, converts it and prints the best
// candidates. By default it handles a single line; with Interactive set it
// keeps prompting until the input ends.
type InputHandler struct {
	converter    convert.Transliterator
	in           *bufio.Reader
	out          io.Writer
	limit        int
	interactive  bool
	requestCount int
}

// NewInputHandler creates a handler printing at most limit candidates per
// phrase; limit <= 0 prints them all.
func NewInputHandler(converter convert.Transliterator, in io.Reader, out io.Writer, limit int, interactive bool) *InputHandler {
	return &InputHandler{
		converter:   converter,
		in:          bufio.NewReader(in),
		out:         out,
		limit:       limit,
		interactive: interactive,
	}
}

// Start runs the prompt. Reaching the end of input is not an error.
func (h *InputHandler) Start() error {
	for {
		if _, err := io.WriteString(h.out, Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := h.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		eof := err != nil

		line = strings.TrimRight(line, "\r\n")
		if err := h.dispatch(line); err != nil {
			return err
		}

		if eof || !h.interactive {
			return nil
		}
	}
}

// dispatch runs a command in interactive mode and converts anything else.
// Blank lines are skipped in interactive mode only.
func (h *InputHandler) dispatch(line string) error {
	if !h.interactive {
		return h.handleInput(line)
	}

	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return nil
	case fields[0] == statsCommand:
		return h.printStats()
	case fields[0] == wordsCommand:
		if len(fields) < 2 {
			log.Warnf("usage: %s <persian prefix>", wordsCommand)
			return nil
		}
		return h.printWords(fields[1])
	}
	return h.handleInput(line)
}

// handleInput converts one line and prints its candidates.
func (h *InputHandler) handleInput(phrase string) error {
	h.requestCount++

	start := time.Now()
	results := convert.Top(h.converter, phrase, h.limit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for phrase '%s' (%d candidates)", elapsed, phrase, len(results))

	if len(results) == 0 {
		log.Warnf("No candidates found for '%s'", phrase)
		return nil
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(h.out, "%s %s\n", utils.FormatConfidence(r.Confidence), r.Text); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// printWords lists known corpus words starting with prefix, when the
// converter can list them.
func (h *InputHandler) printWords(prefix string) error {
	lister, ok := h.converter.(convert.WordLister)
	if !ok {
		log.Warn("Word listing is not supported by this converter")
		return nil
	}

	entries := lister.KnownWords(prefix, wordsLimit)
	if len(entries) == 0 {
		log.Warnf("No known words start with '%s'", prefix)
		return nil
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(h.out, "%2d. %-20s (freq: %8s)\n", i+1, e.Word, utils.FormatWithCommas(e.Count)); err != nil {
			return fmt.Errorf("failed to write words: %w", err)
		}
	}
	return nil
}

func (h *InputHandler) printStats() error {
	stats := h.converter.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(h.out, "%-20s %s\n", k, utils.FormatWithCommas(stats[k])); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
	}
	log.Debugf("Printed stats after %d requests", h.requestCount)
	return nil
}
