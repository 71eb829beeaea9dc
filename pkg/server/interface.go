/*
Package server implements msgpack IPC for Finglish conversion.

Clients write msgpack maps to the server's stdin, back to back with no extra
framing, and read one msgpack map per request from stdout. Logs go to stderr.
Once started the server writes a single status message:

	{"status": "ready"}

# Requests

A phrase request has no action (or action "convert"):

	{"id": "req_001", "p": "salam doost", "l": 5}

The server answers with ranked phrase candidates and the time taken in
microseconds:

	{"id": "req_001", "s": [{"t": "سلام دوست", "c": 1.0, "r": 1}], "c": 1, "t": 212}

"w" and "k" override the max word size and per-word cutoff for that request.
Action "word" converts "p" as a single word, without tokenizing it:

	{"id": "req_002", "action": "word", "p": "khoobi"}

Action "words" lists corpus words starting with a Persian prefix, most
frequent first; "c" is the count relative to the most frequent word:

	{"id": "req_003", "action": "words", "p": "خو", "l": 3}

Action "stats" reports the loaded data sizes:

	{"id": "req_004", "action": "stats"}
	{"id": "req_004", "status": "ok", "stats": {"frequencyWords": 120, ...}}

Requests without an id get a generated one, echoed in the response.

# Errors

Invalid requests get an error message instead of a response:

	{"id": "req_005", "e": "phrase is empty", "c": 400}
*/
package server

// Request actions.
const (
	ActionConvert = "convert"
	ActionWord    = "word"
	ActionWords   = "words"
	ActionStats   = "stats"
)

// ConvertRequest asks for phrase or word candidates.
type ConvertRequest struct {
	ID          string `msgpack:"id"`
	Action      string `msgpack:"action,omitempty"`
	Phrase      string `msgpack:"p"`
	Limit       int    `msgpack:"l,omitempty"`
	MaxWordSize int    `msgpack:"w,omitempty"`
	Cutoff      int    `msgpack:"k,omitempty"`
}

// ConvertCandidate is one ranked rendering in a response.
type ConvertCandidate struct {
	Text       string  `msgpack:"t"`
	Confidence float64 `msgpack:"c"`
	Rank       uint16  `msgpack:"r"`
}

// ConvertResponse carries the candidates for a ConvertRequest.
type ConvertResponse struct {
	ID         string             `msgpack:"id"`
	Candidates []ConvertCandidate `msgpack:"s"`
	Count      int                `msgpack:"c"`
	TimeTaken  int64              `msgpack:"t"`
}

// StatusResponse is sent on startup and in reply to a stats request.
type StatusResponse struct {
	ID     string         `msgpack:"id,omitempty"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ConvertError holds basic error information for a failed request
type ConvertError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
