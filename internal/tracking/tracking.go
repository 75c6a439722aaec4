// Package tracking records privacy-conscious page views.
package tracking

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/bento-portfolio/internal/store"
)

// Recorder persists visits.
type Recorder interface {
	RecordVisit(ctx context.Context, v store.Visit) error
}

var skipPrefixes = []string{"/static/", "/api/", "/admin/", "/favicon"}

// Tracker hashes client addresses and records page views in the background.
type Tracker struct {
	rec  Recorder
	salt string
	now  func() time.Time
	wg   sync.WaitGroup
}

// New returns a Tracker with a fresh per-process salt.
func New(rec Recorder) *Tracker {
	return &Tracker{rec: rec, salt: randomHex(32), now: time.Now}
}

// RandomToken returns 64 hex characters from crypto/rand.
func RandomToken() string {
	return randomHex(32)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("tracking: reading random bytes: %v", err)
	}
	return hex.EncodeToString(b)
}

// HashIP hashes ip with the tracker's salt. The same ip always hashes to
// the same value for the life of the process.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack reports whether a request to path with the given DNT header
// is recorded.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records successful page views after the handler has run.
// Detail page views carry the project id from the route.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !ShouldTrack(path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		v := store.Visit{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			ProjectID: c.Param("id"),
			Timestamp: t.now(),
		}
		t.wg.Add(1)
		go t.record(v)
	}
}

func (t *Tracker) record(v store.Visit) {
	defer t.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.rec.RecordVisit(ctx, v); err != nil {
		log.Printf("tracking: error recording visit: %v", err)
	}
}

// Wait blocks until every pending visit has been written.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Pruner deletes old visits.
type Pruner interface {
	DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Prune removes visits older than retention.
func Prune(ctx context.Context, p Pruner, retention time.Duration, now time.Time) (int64, error) {
	n, err := p.DeleteVisitsBefore(ctx, now.Add(-retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("tracking: privacy cleanup removed %d visits older than %s", n, retention)
	}
	return n, nil
}
