package server

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/renderer"
)

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Use request context to stop rendering when the client disconnects
	buf, stats, err := s.raytracer.RenderContext(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, renderer.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, renderer.ErrInterrupted):
			logger.Infof("render cancelled: %v", err)
		default:
			logger.Errorf("render failed: %v", err)
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, buf.Image()); err != nil {
		logger.Errorf("failed to encode image: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(encoded.Bytes()); err != nil {
		logger.Warningf("failed to write image: %v", err)
		return
	}

	logger.Infof("rendered %s/%s %dx%d@%d in %s",
		stats.Scene, stats.Mode, stats.Width, stats.Height, stats.SampleCount, stats.RenderTime.Round(time.Millisecond))
}
