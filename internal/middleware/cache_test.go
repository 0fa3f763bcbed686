package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureWriterBoundsCaptureNotClient(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	_, _ = cw.Write([]byte("0123456789"))
	_, _ = cw.Write([]byte("overflow"))

	// The client gets the full response, the capture stops at the limit
	// and size keeps counting so the overflow is detectable.
	assert.Equal(t, "0123456789overflow", rec.Body.String())
	assert.Equal(t, "0123456789", cw.buf.String())
	assert.Equal(t, int64(18), cw.size)
	assert.Greater(t, cw.size, cw.limit)
}

func TestCaptureWriterExactLimitIsComplete(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	_, _ = cw.Write([]byte("full"))

	// A body of exactly the limit is fully captured and safe to cache.
	assert.Equal(t, "full", cw.buf.String())
	assert.Equal(t, int64(4), cw.size)
	assert.LessOrEqual(t, cw.size, cw.limit)
}

func TestCaptureWriterUnlimited(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 0}

	_, _ = cw.Write([]byte("anything goes"))

	assert.Equal(t, "anything goes", cw.buf.String())
	assert.Equal(t, int64(13), cw.size)
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"id":1}`))
	assert.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `{"id":1}`, string(body))
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte("short"))
	assert.False(t, ok)
}
