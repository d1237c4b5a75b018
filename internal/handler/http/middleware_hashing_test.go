package http

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
)

// sha256("secret")
const secretSHA256 = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"

func executeIntegrity(t *testing.T, body, hashHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	h := &Handler{logger: logger.Nop()}

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seenBody = string(b)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quarantine", strings.NewReader(body))
	if hashHeader != "" {
		req.Header.Set(contentHashHeader, hashHeader)
	}
	rr := httptest.NewRecorder()
	h.contentIntegrity(next).ServeHTTP(rr, req)
	return rr, seenBody
}

func TestContentIntegrity(t *testing.T) {
	body := `{"content_base64":"` + base64.StdEncoding.EncodeToString([]byte("secret")) + `","tier":"HIGH"}`

	tests := []struct {
		name       string
		body       string
		header     string
		wantStatus int
	}{
		{name: "no header", body: body, wantStatus: http.StatusCreated},
		{name: "matching hash", body: body, header: secretSHA256, wantStatus: http.StatusCreated},
		{name: "matching hash upper case", body: body, header: strings.ToUpper(secretSHA256), wantStatus: http.StatusCreated},
		{name: "mismatching hash", body: body, header: strings.Repeat("0", 64), wantStatus: http.StatusBadRequest},
		// left for the handler to reject
		{name: "invalid json", body: "{", header: secretSHA256, wantStatus: http.StatusCreated},
		{name: "invalid base64", body: `{"content_base64":"***"}`, header: secretSHA256, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, seen := executeIntegrity(t, tt.body, tt.header)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, tt.body, seen, "body must be readable again downstream")
			}
		})
	}
}
