// Package responsewriter observes the status code and body size of a
// response as it is written, for the access log.
package responsewriter

import "net/http"

// ResponseWriter records what passes through it. The first WriteHeader wins;
// later calls are dropped instead of triggering the net/http superfluous
// header warning.
type ResponseWriter struct {
	http.ResponseWriter

	status    int
	bytes     int
	committed bool
}

// Wrap returns a recording writer around w.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if w.committed {
		return
	}
	w.committed = true
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(p []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// StatusCode reports the committed status, or 200 before any write.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten reports the body bytes written so far.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
