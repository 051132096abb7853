package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{
		"status": "success",
		"data":   data,
	})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"status":  "success",
		"message": msg,
	})
}

// writeFail translates a ClientError into its fail envelope. Everything else
// is logged and collapsed to a generic 500 so internals never leak.
func writeFail(w http.ResponseWriter, err error, logPrefix string) {
	var ce *ClientError
	if errors.As(err, &ce) {
		writeJSON(w, ce.Status, map[string]any{
			"status":  "fail",
			"message": ce.Message,
		})
		return
	}

	log.Printf("openmusic-api: %s: %v", logPrefix, err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"status":  "error",
		"message": "something went wrong on our side",
	})
}
