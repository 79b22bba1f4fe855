package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/audit"
	"sqlgate/pkg/authn"
	"sqlgate/pkg/config"
	"sqlgate/pkg/gate"
	"sqlgate/pkg/model"
	"sqlgate/pkg/report"
	"sqlgate/pkg/server"
	"sqlgate/pkg/token"
)

const testSecret = "test-secret"

// newTestServer wires a full server around fake stores and registers every
// endpoint. The returned execution store is the one the handlers hit.
func newTestServer(t *testing.T) (*server.Server, *fakeExecutionStore) {
	t.Helper()

	parameters := &fakeParameterStore{records: map[string]*model.Parameter{
		"tb_open": {
			Table:  "tb_open",
			Select: model.FlagYes, Insert: model.FlagYes, Update: model.FlagYes,
		},
		"tb_guarded": {
			Table:  "tb_guarded",
			Select: model.FlagYes, Insert: model.FlagYes, Token: model.FlagYes,
		},
	}}
	users := &fakeUserStore{users: map[string]*model.User{
		"0812345678": {IDUser: 1, Phone: "0812345678", OTP: authn.HashOTP("123456")},
	}}
	execution := &fakeExecutionStore{}

	issuer := token.NewIssuer(testSecret, "HS256", 30*time.Minute)
	auditLog := audit.NewLogger()
	auditLog.SetWriter(io.Discard)

	settings := config.Settings{
		BindAddress:       "127.0.0.1",
		Port:              "0",
		ReportTemplateDir: t.TempDir(),
		ReportOutputDir:   t.TempDir(),
	}

	s := server.NewServer(
		settings,
		gate.New(parameters, issuer),
		authn.NewService(users, issuer),
		execution,
		report.NewGenerator(execution, settings.ReportTemplateDir, settings.ReportOutputDir),
		auditLog,
	)
	RegisterAll(s)

	return s, execution
}

func testToken(t *testing.T, phone string) string {
	t.Helper()
	issuer := token.NewIssuer(testSecret, "HS256", 30*time.Minute)
	signed, _, err := issuer.Issue(phone)
	require.NoError(t, err)
	return signed
}

func doRequest(s *server.Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) apperr.Body {
	t.Helper()
	var body apperr.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
