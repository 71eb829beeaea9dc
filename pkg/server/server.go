package server

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/finglish/internal/logger"
	"github.com/bastiangx/finglish/internal/utils"
	"github.com/bastiangx/finglish/pkg/config"
	"github.com/bastiangx/finglish/pkg/convert"
)

// Server handles the IPC for conversions
type Server struct {
	converter convert.Transliterator
	config    *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	log       *log.Logger
	requests  int
}

// NewServer creates a server reading requests from r and writing responses
// to w. cmd/finglish passes stdin and stdout.
func NewServer(converter convert.Transliterator, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		converter: converter,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		log:       logger.New("ipc"),
	}
}

// Start sends the ready status, then serves requests until the input ends.
// A clean end of input returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requests++

		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes and dispatches one message. Only write failures are
// returned; bad requests are answered with a ConvertError.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request ConvertRequest
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.log.Warnf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", 400)
	}
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	switch request.Action {
	case "", ActionConvert:
		return s.handleConvert(request)
	case ActionWord:
		return s.handleWord(request)
	case ActionWords:
		return s.handleWords(request)
	case ActionStats:
		return s.send(StatusResponse{
			ID:     request.ID,
			Status: "ok",
			Stats:  s.converter.Stats(),
		})
	default:
		return s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleConvert(request ConvertRequest) error {
	if msg, ok := s.validate(request); !ok {
		return s.sendError(request.ID, msg, 400)
	}

	start := time.Now()
	results := convert.Top(s.converter, request.Phrase, s.limit(request.Limit), s.options(request)...)
	elapsed := time.Since(start)

	candidates := make([]ConvertCandidate, len(results))
	for i, r := range results {
		candidates[i] = ConvertCandidate{Text: r.Text, Confidence: r.Confidence}
	}

	s.log.Debugf("Converted %q: %d candidates in %s", request.Phrase, len(candidates), elapsed)
	return s.sendCandidates(request.ID, candidates, elapsed)
}

func (s *Server) handleWord(request ConvertRequest) error {
	if msg, ok := s.validate(request); !ok {
		return s.sendError(request.ID, msg, 400)
	}

	start := time.Now()
	results := s.converter.Word(request.Phrase, s.options(request)...)
	elapsed := time.Since(start)

	limit := min(len(results), s.limit(request.Limit))
	candidates := make([]ConvertCandidate, limit)
	for i, r := range results[:limit] {
		candidates[i] = ConvertCandidate{Text: r.Text, Confidence: r.Confidence}
	}
	return s.sendCandidates(request.ID, candidates, elapsed)
}

// handleWords lists known corpus words starting with the request's prefix.
// Confidence is the word's count relative to the most frequent corpus word.
func (s *Server) handleWords(request ConvertRequest) error {
	lister, ok := s.converter.(convert.WordLister)
	if !ok {
		return s.sendError(request.ID, "word listing is not supported", 501)
	}
	if msg, ok := s.validate(request); !ok {
		return s.sendError(request.ID, msg, 400)
	}

	start := time.Now()
	entries := lister.KnownWords(request.Phrase, s.limit(request.Limit))
	maxCount := lister.MaxCount()
	elapsed := time.Since(start)

	candidates := make([]ConvertCandidate, len(entries))
	for i, e := range entries {
		candidates[i] = ConvertCandidate{Text: e.Word}
		if maxCount > 0 {
			candidates[i].Confidence = float64(e.Count) / float64(maxCount)
		}
	}
	return s.sendCandidates(request.ID, candidates, elapsed)
}

// sendCandidates ranks already sorted candidates from 1 and sends them.
func (s *Server) sendCandidates(id string, candidates []ConvertCandidate, elapsed time.Duration) error {
	ranks := utils.CreateRankList(len(candidates))
	for i := range candidates {
		candidates[i].Rank = ranks[i]
	}
	return s.send(ConvertResponse{
		ID:         id,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) validate(request ConvertRequest) (string, bool) {
	switch {
	case request.Phrase == "":
		return "phrase is empty", false
	case utf8.RuneCountInString(request.Phrase) > s.config.Server.MaxPhraseLen:
		return fmt.Sprintf("phrase exceeds maximum length of %d characters", s.config.Server.MaxPhraseLen), false
	case request.Limit < 0, request.MaxWordSize < 0, request.Cutoff < 0:
		return "limits must not be negative", false
	}
	return "", true
}

// limit clamps a requested result count to [1, server.max_limit], using
// convert.display_limit when none was given.
func (s *Server) limit(requested int) int {
	limit := requested
	if limit == 0 {
		limit = s.config.Convert.DisplayLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (s *Server) options(request ConvertRequest) []convert.Option {
	var opts []convert.Option
	if request.MaxWordSize > 0 {
		opts = append(opts, convert.WithMaxWordSize(request.MaxWordSize))
	}
	if request.Cutoff > 0 {
		opts = append(opts, convert.WithCutoff(request.Cutoff))
	}
	return opts
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	s.log.Debugf("Request %s rejected: %s", id, message)
	return s.send(ConvertError{ID: id, Error: message, Code: code})
}
