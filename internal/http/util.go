package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// readBodyFields decodes a JSON object body. Anything unreadable counts as {}.
func readBodyFields(r *http.Request) map[string]json.RawMessage {
	fields := map[string]json.RawMessage{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		return fields
	}
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// stringField returns fields[key] when it is a JSON string, def otherwise.
func stringField(fields map[string]json.RawMessage, key, def string) string {
	raw, ok := fields[key]
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || string(raw) == "null" {
		return def
	}
	return s
}

// rawField returns fields[key] unless it is absent or null.
func rawField(fields map[string]json.RawMessage, key string) json.RawMessage {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	return raw
}

// parseDesignID accepts plain decimal digits only.
func parseDesignID(s string) (int64, bool) {
	if s == "" || len(s) > 18 {
		return 0, false
	}
	var id int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		id = id*10 + int64(c-'0')
	}
	return id, true
}
