package gate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/model"
	"sqlgate/pkg/statement"
)

type fakeParameterStore struct {
	records map[string]*model.Parameter
}

func (f *fakeParameterStore) ByTable(_ context.Context, table string) (*model.Parameter, error) {
	record, ok := f.records[table]
	if !ok {
		return nil, apperr.New(apperr.KindTableNotGoverned, "Table is not governed")
	}
	return record, nil
}

type fakeVerifier struct {
	calls int
}

func (f *fakeVerifier) VerifyHeader(header string) (string, error) {
	f.calls++
	switch header {
	case "":
		return "", apperr.New(apperr.KindCredentialRequired, "access token is required")
	case "Bearer good":
		return "0812345678", nil
	default:
		return "", apperr.New(apperr.KindInvalidCredential, "Could not validate credentials")
	}
}

func newGate(verifier CredentialVerifier) *Gate {
	params := &fakeParameterStore{records: map[string]*model.Parameter{
		"tb_open": {
			Table:  "tb_open",
			Select: model.FlagYes, Insert: model.FlagYes,
		},
		"tb_guarded": {
			Table:  "tb_guarded",
			Select: model.FlagYes, Token: model.FlagYes,
		},
		"tb_locked": {
			Table: "tb_locked",
			Token: model.FlagYes,
		},
	}}
	return New(params, verifier)
}

func mustParse(t *testing.T, raw string) statement.Statement {
	t.Helper()
	stmt, err := statement.Parse(raw)
	require.NoError(t, err)
	return stmt
}

func TestAuthorizeOpenSelect(t *testing.T) {
	g := newGate(&fakeVerifier{})

	decision, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_open"), "")
	require.NoError(t, err)
	assert.Equal(t, "tb_open", decision.Parameter.Table)
	assert.Empty(t, decision.Phone)
}

func TestAuthorizeWrongEndpoint(t *testing.T) {
	g := newGate(&fakeVerifier{})

	_, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "insert into tb_open (idc) values (1)"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindWrongEndpoint))

	_, err = g.Authorize(context.Background(), ModeWrite,
		mustParse(t, "select * from tb_open"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindWrongEndpoint))
}

func TestAuthorizeUngovernedTable(t *testing.T) {
	g := newGate(&fakeVerifier{})

	_, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_unknown"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindTableNotGoverned))
}

func TestAuthorizeDeniedVerb(t *testing.T) {
	g := newGate(&fakeVerifier{})

	_, err := g.Authorize(context.Background(), ModeWrite,
		mustParse(t, "delete from tb_open where idc=1"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestAuthorizeTokenRequired(t *testing.T) {
	g := newGate(&fakeVerifier{})

	_, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_guarded"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindCredentialRequired))

	_, err = g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_guarded"), "Bearer forged")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidCredential))

	decision, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_guarded"), "Bearer good")
	require.NoError(t, err)
	assert.Equal(t, "0812345678", decision.Phone)
}

func TestAuthorizeCredentialCheckedBeforeVerbFlag(t *testing.T) {
	// tb_locked requires a token and denies every verb. A missing
	// credential must surface as a credential error, not a permission one.
	g := newGate(&fakeVerifier{})

	_, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_locked"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindCredentialRequired))

	_, err = g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_locked"), "Bearer good")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestAuthorizeVerifierSkippedWhenTokenNotRequired(t *testing.T) {
	verifier := &fakeVerifier{}
	g := newGate(verifier)

	_, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from tb_open"), "Bearer forged")
	require.NoError(t, err)
	assert.Zero(t, verifier.calls)
}

func TestAuthorizeSchemaQualifiedTable(t *testing.T) {
	g := newGate(&fakeVerifier{})

	decision, err := g.Authorize(context.Background(), ModeRead,
		mustParse(t, "select * from public.tb_open"), "")
	require.NoError(t, err)
	assert.Equal(t, "tb_open", decision.Parameter.Table)
}
