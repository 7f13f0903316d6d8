package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer mimics the envelopes of the todo API.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer tok-1"
	}
	unauthorized := map[string]any{"error": map[string]string{"code": "NO_AUTHORIZATION_HEADER", "message": "No Authorization Header"}}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "pw" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]string{"code": "UNAUTHORIZED", "message": "Unauthorized"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]string{"id": "u1", "email": in["email"], "token": "tok-1"}})
	})
	mux.HandleFunc("GET /api/todo", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, unauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"id": "t1", "title": "ship it", "completed": true},
			{"id": "t2", "title": "write docs", "completed": false},
		}})
	})
	mux.HandleFunc("PUT /api/todo/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "t2" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "TODO_NOT_FOUND", "message": "Todo Not Found"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"id": "t2", "title": "write docs", "completed": true}})
	})
	mux.HandleFunc("DELETE /api/todo/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestCLI(t *testing.T, serverURL, input string) (*cli, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true
	out := &bytes.Buffer{}

	return &cli{
		client: newClient(serverURL, nil),
		store:  &credentialStore{path: filepath.Join(t.TempDir(), "todo", "credentials")},
		in:     bufio.NewReader(strings.NewReader(input)),
		out:    out,
		prompt: func(io.Writer) (string, error) { return "pw", nil },
	}, out
}

func TestCLI_LoginListAndComplete(t *testing.T) {
	srv := fakeServer(t)
	app, out := newTestCLI(t, srv.URL, "me@example.com\n")
	ctx := context.Background()

	require.NoError(t, app.login(ctx))
	assert.Contains(t, out.String(), "Logged in as me@example.com")

	token, err := app.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	out.Reset()
	require.NoError(t, app.run(ctx, "list", nil))
	assert.Contains(t, out.String(), "[x] t1  ship it")
	assert.Contains(t, out.String(), "[ ] t2  write docs")

	out.Reset()
	require.NoError(t, app.run(ctx, "done", []string{"t2"}))
	assert.Contains(t, out.String(), "t2 is now done")

	err = app.run(ctx, "done", []string{"someone-elses"})
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "TODO_NOT_FOUND", apiErr.Code)

	require.NoError(t, app.run(ctx, "rm", []string{"t1"}))

	require.NoError(t, app.run(ctx, "logout", nil))
	err = app.run(ctx, "list", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestCLI_WrongPassword(t *testing.T) {
	srv := fakeServer(t)
	app, _ := newTestCLI(t, srv.URL, "me@example.com\n")
	app.prompt = func(io.Writer) (string, error) { return "nope", nil }

	err := app.login(context.Background())

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	token, err := app.store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCLI_UnknownCommand(t *testing.T) {
	app, out := newTestCLI(t, "http://127.0.0.1:0", "")

	err := app.run(context.Background(), "frobnicate", nil)

	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage: todo-cli")
}

func TestCredentialStore_FileMode(t *testing.T) {
	store := &credentialStore{path: filepath.Join(t.TempDir(), "todo", "credentials")}

	require.NoError(t, store.Save("abc"))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(data))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestReadPasswordFromTerminal(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := readPasswordFromTerminal(&out)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Password: \n", out.String())
}
