package audit

import "fmt"

// LoginEvent represents an OTP login attempt
type LoginEvent struct {
	Phone        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Phone)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Phone)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Phone,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.Success {
		sd[SDIDAuth]["result"] = "success"
	} else {
		sd[SDIDAuth]["result"] = "failure"
	}
	return sd
}
