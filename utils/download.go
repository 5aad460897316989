package utils

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	// ErrDownloadFailure 重试耗尽后仍未成功
	ErrDownloadFailure = errors.New("download failed")
	// ErrChecksumMismatch 下载内容与清单中的 md5 不一致
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

const (
	downloadRetries = 3
	retryInterval   = time.Second
)

// DownloadFile 下载 url 到 targetPath，失败重试。
// 返回最后一次响应的状态码，404 不视为错误，由调用方决定如何处理。
func DownloadFile(url string, targetPath string) (int, error) {
	var lastErr error
	var lastStatus int

	for attempt := 0; attempt < downloadRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryInterval)
		}

		status, err := downloadOnce(url, targetPath)
		lastStatus = status
		if err == nil {
			return status, nil
		}
		if status == http.StatusNotFound {
			return status, nil
		}
		lastErr = err
	}

	return lastStatus, fmt.Errorf("%w: %s: %v", ErrDownloadFailure, url, lastErr)
}

func downloadOnce(url string, targetPath string) (int, error) {
	resp, err := http.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(targetPath)
	if err != nil {
		return resp.StatusCode, err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(targetPath)
		return resp.StatusCode, err
	}

	return resp.StatusCode, out.Close()
}

// Md5File 计算文件内容的 md5，与下载清单比对时使用
func Md5File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
