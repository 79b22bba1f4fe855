package audit

import "fmt"

// StatementEvent represents an attempted SQL statement, whether it was
// admitted by the permission matrix or not
type StatementEvent struct {
	Verb         string
	Table        string
	Phone        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e StatementEvent) MessageID() string {
	return "statement"
}

func (e StatementEvent) Message() string {
	actor := e.Phone
	if actor == "" {
		actor = "anonymous"
	}
	if e.Success {
		return fmt.Sprintf("%s executed %s on %s", actor, e.Verb, e.Table)
	}
	msg := fmt.Sprintf("%s tried to execute %s on %s", actor, e.Verb, e.Table)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e StatementEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e StatementEvent) Facility() int {
	return FacilityAuth
}

func (e StatementEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"table": e.Table,
		},
		SDIDAction: {
			"operation": e.Verb,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.Phone != "" {
		sd[SDIDAuth] = map[string]string{"user": e.Phone}
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
