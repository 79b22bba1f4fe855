// Package gate enforces the per-table permission matrix. Every statement is
// authorized here before it can reach the execution engine; a denied request
// never touches the transaction database.
package gate

import (
	"context"
	"fmt"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/model"
	"sqlgate/pkg/server/store"
	"sqlgate/pkg/statement"
)

// Mode distinguishes the two entry points: the read endpoint accepts only
// select, the write endpoint only mutation verbs.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// CredentialVerifier checks a presented Authorization header and returns the
// embedded identity.
type CredentialVerifier interface {
	VerifyHeader(header string) (phone string, err error)
}

// Decision is a successful authorization outcome.
type Decision struct {
	Parameter *model.Parameter
	// Phone is the verified identity when the table required a credential.
	// It proves someone authenticated; it is not matched against any
	// per-table owner list.
	Phone string
}

// Gate consults the permission store and, when required, the credential
// verifier.
type Gate struct {
	parameters store.ParameterStore
	verifier   CredentialVerifier
}

// New creates a Gate.
func New(parameters store.ParameterStore, verifier CredentialVerifier) *Gate {
	return &Gate{parameters: parameters, verifier: verifier}
}

// Authorize evaluates the policy chain, in order: endpoint/verb cross-use,
// permission record lookup (absence is default-deny), credential check when
// the record demands one, then the per-verb allow/deny flag. The credential
// check deliberately precedes the allow/deny check so that credential
// failures and permission failures stay distinguishable.
func (g *Gate) Authorize(ctx context.Context, mode Mode, stmt statement.Statement, authHeader string) (*Decision, error) {
	if mode == ModeRead && stmt.Verb != statement.VerbSelect {
		return nil, apperr.New(apperr.KindWrongEndpoint, "only select statements are accepted on this endpoint")
	}
	if mode == ModeWrite && stmt.Verb == statement.VerbSelect {
		return nil, apperr.New(apperr.KindWrongEndpoint, "select statements are not accepted on this endpoint")
	}

	parameter, err := g.parameters.ByTable(ctx, stmt.BareTable())
	if err != nil {
		return nil, err
	}

	var phone string
	if parameter.TokenRequired() {
		phone, err = g.verifier.VerifyHeader(authHeader)
		if err != nil {
			return nil, err
		}
	}

	if !parameter.FlagFor(stmt.Verb).Allows() {
		return nil, apperr.New(apperr.KindForbidden,
			fmt.Sprintf("%s is not allowed on %s", stmt.Verb, stmt.BareTable()))
	}

	return &Decision{Parameter: parameter, Phone: phone}, nil
}
