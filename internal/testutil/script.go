// internal/testutil/script.go
package testutil

import (
	"strings"
	"sync"
)

// Response is a canned child-process outcome.
type Response struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK is a successful response with the given stdout.
func OK(stdout string) Response {
	return Response{Stdout: stdout}
}

// Fail is a failed response with the given stderr.
func Fail(stderr string) Response {
	return Response{ExitCode: 1, Stderr: stderr}
}

// Script replays canned responses keyed by the space-joined argv.
// Responses registered for the same key are consumed in order; the last one
// repeats. Unknown commands get Fallback.
type Script struct {
	mu        sync.Mutex
	responses map[string][]Response
	calls     []string

	Fallback Response
}

// NewScript creates a script whose unknown commands fail with exit code 127.
func NewScript() *Script {
	return &Script{
		responses: make(map[string][]Response),
		Fallback:  Response{ExitCode: 127, Stderr: "command not found"},
	}
}

// On registers responses for an argv line.
func (s *Script) On(argv string, rs ...Response) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[argv] = append(s.responses[argv], rs...)
	return s
}

// Next records the call and returns its response.
func (s *Script) Next(argv []string) Response {
	key := strings.Join(argv, " ")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, key)
	queue, ok := s.responses[key]
	if !ok || len(queue) == 0 {
		return s.Fallback
	}
	r := queue[0]
	if len(queue) > 1 {
		s.responses[key] = queue[1:]
	}
	return r
}

// Calls returns the argv lines seen so far, in order.
func (s *Script) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount counts calls whose argv line contains substr.
func (s *Script) CallCount(substr string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if strings.Contains(c, substr) {
			n++
		}
	}
	return n
}
