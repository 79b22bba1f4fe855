package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/pkg/report"
)

func TestReportEndpoint(t *testing.T) {
	s, execution := newTestServer(t)
	execution.rows = []map[string]interface{}{{"xname": "first"}}

	tmpl := "# Report\n\n{{range .Rows}}- {{.xname}}\n{{end}}"
	err := os.WriteFile(
		filepath.Join(s.Settings.ReportTemplateDir, "orders"+report.TemplateExt),
		[]byte(tmpl), 0o644)
	require.NoError(t, err)

	body := `{"template":"orders","output":"orders.md","query":"select xname from tb_orders"}`
	req := httptest.NewRequest("POST", "/api/v1/report", strings.NewReader(body))
	w := doRequest(s, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.CodeStatus)

	content, err := os.ReadFile(resp.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "- first")
}

func TestReportEndpointUnknownTemplate(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"template":"missing","output":"out.md","query":"select 1"}`
	req := httptest.NewRequest("POST", "/api/v1/report", strings.NewReader(body))
	w := doRequest(s, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Template not found", decodeErrorBody(t, w).Detail)
}

func TestReportEndpointMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/report", strings.NewReader("{not json"))
	w := doRequest(s, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
