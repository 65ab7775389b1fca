package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savedPage = `<html><body>
<nav><a class="global-nav__primary-link" href="/feed/">Home</a></nav>
<div class="search-results-container"><ul>
  <li class="reusable-search__result-container">
    <span class="entity-result__title-text"><a href="https://www.linkedin.com/in/ada?mini=1">Ada Lovelace</a></span>
    <div class="t-14">Software Engineer at Acme Corp</div>
    <div class="t-14">London</div>
  </li>
  <li class="reusable-search__result-container">
    <a href="https://www.linkedin.com/in/grace">Grace</a>
  </li>
</ul></div>
</body></html>`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PEOPLESEARCH_SCROLL_PAUSE", "0s")
	t.Setenv("PEOPLESEARCH_WAIT_TIMEOUT", "10ms")
	t.Setenv("PEOPLESEARCH_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePage(t *testing.T, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))
	return path
}

func TestSearchCommandFromSavedPage(t *testing.T) {
	out, err := runCLI(t, "search", "--html", writePage(t, savedPage), "golang")
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/in/ada\nhttps://www.linkedin.com/in/grace\n", out)
}

func TestSearchCommandCSV(t *testing.T) {
	out, err := runCLI(t, "search", "-d", "-f", "csv", "--html", writePage(t, savedPage), "golang")
	require.NoError(t, err)
	assert.Contains(t, out, "golang,https://www.linkedin.com/in/ada,Ada Lovelace,Software Engineer at Acme Corp,London,\n")
}

func TestSearchCommandAnonymousPage(t *testing.T) {
	path := writePage(t, `<html><body><a href="/login">Sign in</a></body></html>`)
	_, err := runCLI(t, "search", "--html", path, "golang")
	assert.ErrorContains(t, err, "not implemented")
}

func TestSearchCommandRejectsFormat(t *testing.T) {
	_, err := runCLI(t, "search", "-f", "xml", "golang")
	assert.ErrorContains(t, err, "xml")
}

func TestHistoryCommand(t *testing.T) {
	t.Setenv("PEOPLESEARCH_JOURNAL_PATH", filepath.Join(t.TempDir(), "runs.db"))

	_, err := runCLI(t, "search", "--html", writePage(t, savedPage), "golang", "rust")
	require.NoError(t, err)

	out, err := runCLI(t, "history", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "STARTED")
	assert.Contains(t, out, "golang")
	assert.Contains(t, out, "rust")
}

func TestHistoryRequiresJournal(t *testing.T) {
	_, err := runCLI(t, "history")
	assert.ErrorContains(t, err, "journal_path")
}
