package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMd5File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	sum, err := Md5File(path)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
}

func TestMd5FileMissing(t *testing.T) {
	_, err := Md5File(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "out.bin")
	status, err := DownloadFile(srv.URL, target)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDownloadFileNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	// 404 不返回错误，由调用方决定是否视为非交易日
	status, err := DownloadFile(srv.URL, filepath.Join(t.TempDir(), "out.bin"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDownloadFileRetriesThenFails(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := DownloadFile(srv.URL, filepath.Join(t.TempDir(), "out.bin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDownloadFailure)
	assert.Equal(t, downloadRetries, attempts)
}
