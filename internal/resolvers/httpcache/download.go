package httpcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/seqres/internal/logger"
)

// DefaultChunkSize is the read size used when streaming a download to disk.
const DefaultChunkSize = 64 * 1024

// TempPrefix marks in-progress downloads in the cache directory.
const TempPrefix = ".download-"

// download fetches url into dest.
// The body is written to a temporary file next to dest and renamed into place
// only after a complete, synced write; every exit path releases the response
// body and the file handle, and removes the temporary file unless renamed.
func (r *Resolver) download(ctx context.Context, url, dest string) (err error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	r.stats.Fetches++
	logger.Debug("GET %s", url)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	tmp := filepath.Join(filepath.Dir(dest), TempPrefix+uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary cache file: %w", err)
	}
	defer func() {
		if f != nil {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	written, err := copyChunks(f, resp.Body, r.chunkSize)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("syncing cache file: %w", err)
	}
	err = f.Close()
	f = nil
	if err != nil {
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err = os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("placing cache file: %w", err)
	}

	logger.Debug("downloaded %d bytes to %s", written, dest)
	return nil
}

// copyChunks streams src to dst in reads of at most chunkSize bytes.
func copyChunks(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}
