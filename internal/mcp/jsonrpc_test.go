package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
)

// newTestServer creates a Server with an immediate analyzer for use in tests.
func newTestServer() *Server {
	return NewServer(analyzer.New(), zerolog.Nop(), "test")
}

// session drives a running Server over a pair of pipes, one line per message.
type session struct {
	t      *testing.T
	in     *io.PipeWriter
	out    *bufio.Reader
	cancel context.CancelFunc
	done   chan error
}

// reply is a decoded JSON-RPC response.
type reply struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *jsonrpcError   `json:"error"`
}

func startSession(t *testing.T, s *Server) *session {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	ss := &session{t: t, in: inW, out: bufio.NewReader(outR), cancel: cancel, done: make(chan error, 1)}
	go func() { ss.done <- s.Run(ctx, inR, outW) }()

	t.Cleanup(func() {
		cancel()
		_ = inW.Close()
		_ = outR.Close()
	})
	return ss
}

func (ss *session) send(line string) {
	ss.t.Helper()
	_, err := io.WriteString(ss.in, line+"\n")
	require.NoError(ss.t, err)
}

// call sends a request line and decodes the next response line.
func (ss *session) call(line string) reply {
	ss.t.Helper()
	ss.send(line)

	type read struct {
		line string
		err  error
	}
	ch := make(chan read, 1)
	go func() {
		l, err := ss.out.ReadString('\n')
		ch <- read{l, err}
	}()

	select {
	case r := <-ch:
		require.NoError(ss.t, r.err)
		var rep reply
		require.NoError(ss.t, json.Unmarshal([]byte(r.line), &rep), "response: %s", r.line)
		return rep
	case <-time.After(2 * time.Second):
		ss.t.Fatalf("no response to %s", line)
		return reply{}
	}
}

// wait returns Run's result once it exits.
func (ss *session) wait() error {
	ss.t.Helper()
	select {
	case err := <-ss.done:
		return err
	case <-time.After(2 * time.Second):
		ss.t.Fatal("Run did not return")
		return nil
	}
}

func TestSession_AnalyzeConversation(t *testing.T) {
	ss := startSession(t, newTestServer())

	hello := ss.call(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Nil(t, hello.Error)
	var info struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(hello.Result, &info))
	assert.NotEmpty(t, info.ProtocolVersion)
	assert.Equal(t, "codecommenter", info.ServerInfo.Name)
	assert.Equal(t, "test", info.ServerInfo.Version)

	// The notification gets no reply: the next line read answers id 2.
	ss.send(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	list := ss.call(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	assert.JSONEq(t, `2`, string(list.ID))
	var tools struct {
		Tools []toolListEntry `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(list.Result, &tools))
	names := make([]string, len(tools.Tools))
	for i, tool := range tools.Tools {
		names[i] = tool.Name
		assert.NotEmpty(t, tool.InputSchema, tool.Name)
	}
	assert.Equal(t, []string{"analyze_code", "detect_language", "suggest"}, names)

	rep := ss.call(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"analyze_code","arguments":{"code":"def foo():\n    pass"}}}`)
	require.Nil(t, rep.Error)
	var res toolsCallResult
	require.NoError(t, json.Unmarshal(rep.Result, &res))
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	var got AnalyzeResult
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &got))
	assert.Equal(t, "Python", got.Language)
	assert.True(t, strings.HasPrefix(got.Comments, "# Code analyzed as Python code\n# Here's what this code does:\n\n"))
	assert.Contains(t, got.Comments, "def foo():\n# This function organizes code for reuse\n")
	assert.Contains(t, got.Suggestions, "\n8. Consider adding docstrings to functions to document their purpose and parameters\n")

	blank := ss.call(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"analyze_code","arguments":{"code":"  \n"}}}`)
	require.Nil(t, blank.Error)
	require.NoError(t, json.Unmarshal(blank.Result, &res))
	assert.True(t, res.IsError)
	assert.Equal(t, analyzer.ErrBlankInput.Error(), res.Content[0].Text)
}

func TestSession_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code int
		id   string
	}{
		{"parse error", `{not json`, -32700, `null`},
		{"unknown method", `{"jsonrpc":"2.0","id":7,"method":"resources/list"}`, -32601, `7`},
		{"invalid params", `{"jsonrpc":"2.0","id":"a","method":"tools/call","params":"analyze_code"}`, -32602, `"a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := startSession(t, newTestServer()).call(tt.line)
			require.NotNil(t, rep.Error)
			assert.Equal(t, tt.code, rep.Error.Code)
			assert.Nil(t, rep.Result)
			if tt.id == `null` {
				assert.True(t, len(rep.ID) == 0 || string(rep.ID) == "null", "id: %s", rep.ID)
			} else {
				assert.JSONEq(t, tt.id, string(rep.ID))
			}
		})
	}
}

func TestSession_Shutdown(t *testing.T) {
	t.Run("context cancelled", func(t *testing.T) {
		ss := startSession(t, newTestServer())
		ss.cancel()
		assert.NoError(t, ss.wait())
	})
	t.Run("input closed", func(t *testing.T) {
		ss := startSession(t, newTestServer())
		ss.call(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
		require.NoError(t, ss.in.Close())
		assert.NoError(t, ss.wait())
	})
}
