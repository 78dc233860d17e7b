package upload

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/yaklabco/mdtidy/pkg/config"
)

// maxImageBytes caps how much image data is read from a remote source.
const maxImageBytes = 32 << 20

// COSUploader stores images in Tencent Cloud Object Storage via the XML API:
// a single authenticated PUT per object.
type COSUploader struct {
	cfg    config.UploadConfig
	client *http.Client
	now    func() time.Time
}

// NewCOSUploader creates an uploader for the configured bucket.
func NewCOSUploader(cfg config.UploadConfig) *COSUploader {
	return &COSUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
	}
}

// Upload implements Uploader. Source is either an http(s) URL to mirror or a
// local file path. The returned URL points at the custom domain when one is
// configured, otherwise at the bucket host.
func (u *COSUploader) Upload(ctx context.Context, source string) (string, error) {
	data, name, err := u.read(ctx, source)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("img/%d-%s", u.now().UnixMilli(), name)
	if err := u.put(ctx, key, data); err != nil {
		return "", err
	}

	if u.cfg.CustomDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cfg.CustomDomain, key), nil
	}
	return fmt.Sprintf("https://%s/%s", u.host(), key), nil
}

// read loads the image bytes from a remote URL or the local filesystem.
func (u *COSUploader) read(ctx context.Context, source string) ([]byte, string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", source, err)
		}
		resp, err := u.client.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", source, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", source, err)
		}
		return data, path.Base(strings.SplitN(source, "?", 2)[0]), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", source, err)
	}
	return data, path.Base(source), nil
}

// put issues a signed PUT Object request.
func (u *COSUploader) put(ctx context.Context, key string, data []byte) error {
	url := fmt.Sprintf("https://%s/%s", u.host(), key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	req.Header.Set("Authorization", u.sign(http.MethodPut, "/"+key))

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("put %s: status %d", key, resp.StatusCode)
	}
	return nil
}

func (u *COSUploader) host() string {
	return fmt.Sprintf("%s.cos.%s.myqcloud.com", u.cfg.Bucket, u.cfg.Region)
}

// sign builds a COS XML API v5 authorization header for a request with no
// signed headers or query parameters.
func (u *COSUploader) sign(method, uri string) string {
	start := u.now().Unix()
	keyTime := fmt.Sprintf("%d;%d", start, start+600)

	signKey := hmacSHA1(u.cfg.SecretKey, keyTime)
	httpString := fmt.Sprintf("%s\n%s\n\n\n", strings.ToLower(method), uri)
	stringToSign := fmt.Sprintf("sha1\n%s\n%s\n", keyTime, sha1Hex(httpString))
	signature := hmacSHA1(signKey, stringToSign)

	return strings.Join([]string{
		"q-sign-algorithm=sha1",
		"q-ak=" + u.cfg.SecretID,
		"q-sign-time=" + keyTime,
		"q-key-time=" + keyTime,
		"q-header-list=",
		"q-url-param-list=",
		"q-signature=" + signature,
	}, "&")
}

func hmacSHA1(key, msg string) string {
	h := hmac.New(sha1.New, []byte(key))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}

func sha1Hex(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
