package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

const (
	header   = "case_id,applicant_name,dob,email,phone,category,priority\n"
	goodFile = header + "C-1,Jane Doe,1990-04-12,jane@example.com,+6281234567890,TAX,HIGH\n"
	badFile  = header + "C-1,Jane Doe,1990-04-12,jane@example.com,+6281234567890,FOOD,HIGH\n"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	out, err := run("validate", writeTemp(t, goodFile))
	require.NoError(t, err)
	assert.Contains(t, out, "1 rows, 1 valid, 0 errors")

	out, err = run("validate", writeTemp(t, badFile))
	assert.Error(t, err)
	assert.Contains(t, out, "category")
	assert.Contains(t, out, "Category must be TAX, LICENSE, or PERMIT")
}

func TestImportCmd_RefusesFileWithErrors(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	signed, _, err := token.NewManager("secret", time.Hour).Generate("u-1", "test@example.com", "ADMIN")
	require.NoError(t, err)

	out, err := run("import", writeTemp(t, badFile), "--server", srv.URL, "--token", signed)

	assert.ErrorIs(t, err, domain.ErrBatchHasErrors)
	assert.Contains(t, out, "FOOD")
	assert.False(t, called)
}

func TestImportCmd_Submits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.ImportResult{Success: 1})
	}))
	defer srv.Close()

	signed, _, err := token.NewManager("secret", time.Hour).Generate("u-1", "test@example.com", "ADMIN")
	require.NoError(t, err)

	out, err := run("import", writeTemp(t, goodFile), "--server", srv.URL, "--token", signed)

	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 cases, 0 failed")
}

func TestImportCmd_RequiresToken(t *testing.T) {
	t.Setenv("CASEIMPORT_TOKEN", "")

	_, err := run("import", writeTemp(t, goodFile), "--token", "")

	assert.Error(t, err)
}

func TestImportCmd_ServerErrorIsNotResubmitted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	signed, _, err := token.NewManager("secret", time.Hour).Generate("u-1", "test@example.com", "ADMIN")
	require.NoError(t, err)

	_, err = run("import", writeTemp(t, goodFile), "--server", srv.URL, "--token", signed)

	assert.ErrorIs(t, err, domain.ErrSubmission)
	assert.Equal(t, int32(1), calls.Load())
}
