package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"sqlgate/pkg/authn"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	accessToken  string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^the gateway server is running$`, s.theGatewayServerIsRunning)
	sc.Step(`^table "([^"]*)" allows "([^"]*)"$`, s.tableAllows)
	sc.Step(`^table "([^"]*)" allows "([^"]*)" and requires a token$`, s.tableAllowsWithToken)
	sc.Step(`^a user "([^"]*)" with OTP "([^"]*)" exists$`, s.aUserExists)
	sc.Step(`^the transaction table "([^"]*)" exists$`, s.theTransactionTableExists)

	// Authentication steps
	sc.Step(`^I log in as "([^"]*)" with OTP "([^"]*)"$`, s.iLogIn)

	// Request steps
	sc.Step(`^I post "([^"]*)" to the select endpoint$`, s.iPostToSelect)
	sc.Step(`^I post "([^"]*)" to the select endpoint with my token$`, s.iPostToSelectWithToken)
	sc.Step(`^I post "([^"]*)" to the mutation endpoint$`, s.iPostToMutation)
	sc.Step(`^I post "([^"]*)" to the mutation endpoint with my token$`, s.iPostToMutationWithToken)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response detail should be "([^"]*)"$`, s.theResponseDetailShouldBe)
	sc.Step(`^the response should contain (\d+) rows?$`, s.theResponseShouldContainRows)
	sc.Step(`^I should receive an access token$`, s.iShouldReceiveAnAccessToken)
}

func (s *StepsContext) theGatewayServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) tableAllows(table, verbs string) error {
	return s.upsertParameter(table, verbs, false)
}

func (s *StepsContext) tableAllowsWithToken(table, verbs string) error {
	return s.upsertParameter(table, verbs, true)
}

func (s *StepsContext) upsertParameter(table, verbs string, tokenRequired bool) error {
	flags := map[string]string{
		"id_select": "no", "id_insert": "no", "id_update": "no", "id_delete": "no",
		"id_truncate": "no", "id_drop": "no", "id_alter": "no", "id_token": "no",
	}
	for _, verb := range strings.Split(verbs, ",") {
		verb = strings.TrimSpace(verb)
		if verb == "" {
			continue
		}
		column := "id_" + verb
		if _, ok := flags[column]; !ok {
			return fmt.Errorf("unknown verb %q", verb)
		}
		flags[column] = "yes"
	}
	if tokenRequired {
		flags["id_token"] = "yes"
	}

	return s.tc.DB.Exec(`
		INSERT INTO tb_parameter (databasename, tablename, id_select, id_insert, id_update, id_delete, id_truncate, id_drop, id_alter, id_token)
		VALUES ('sqlgate_test', ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tablename) DO UPDATE SET
			id_select = EXCLUDED.id_select, id_insert = EXCLUDED.id_insert,
			id_update = EXCLUDED.id_update, id_delete = EXCLUDED.id_delete,
			id_truncate = EXCLUDED.id_truncate, id_drop = EXCLUDED.id_drop,
			id_alter = EXCLUDED.id_alter, id_token = EXCLUDED.id_token
	`, table, flags["id_select"], flags["id_insert"], flags["id_update"], flags["id_delete"],
		flags["id_truncate"], flags["id_drop"], flags["id_alter"], flags["id_token"]).Error
}

func (s *StepsContext) aUserExists(phone, otp string) error {
	return s.tc.DB.Exec(`
		INSERT INTO tb_user (phone, otp) VALUES (?, ?)
		ON CONFLICT (phone) DO UPDATE SET otp = EXCLUDED.otp
	`, phone, authn.HashOTP(otp)).Error
}

func (s *StepsContext) theTransactionTableExists(table string) error {
	if err := s.tc.DB.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (idc integer PRIMARY KEY, xname varchar(100))`, table)).Error; err != nil {
		return err
	}
	return s.tc.DB.Exec(fmt.Sprintf(`TRUNCATE %s`, table)).Error
}

func (s *StepsContext) iLogIn(phone, otp string) error {
	body, _ := json.Marshal(map[string]string{"phone": phone, "otp": otp})
	if err := s.post("/api/v1/login", "application/json", bytes.NewReader(body), ""); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var resp authn.LoginResponse
		if err := json.Unmarshal(s.responseBody, &resp); err != nil {
			return fmt.Errorf("failed to decode login response: %w", err)
		}
		s.accessToken = resp.AccessToken
	}
	return nil
}

func (s *StepsContext) iPostToSelect(sql string) error {
	return s.post("/api/v1/opensql", "text/plain", strings.NewReader(sql), "")
}

func (s *StepsContext) iPostToSelectWithToken(sql string) error {
	return s.post("/api/v1/opensql", "text/plain", strings.NewReader(sql), s.accessToken)
}

func (s *StepsContext) iPostToMutation(sql string) error {
	return s.post("/api/v1/exesql", "text/plain", strings.NewReader(sql), "")
}

func (s *StepsContext) iPostToMutationWithToken(sql string) error {
	return s.post("/api/v1/exesql", "text/plain", strings.NewReader(sql), s.accessToken)
}

func (s *StepsContext) post(path, contentType string, body io.Reader, accessToken string) error {
	req, err := http.NewRequest("POST", s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseDetailShouldBe(detail string) error {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to decode error body %s: %w", s.responseBody, err)
	}
	if body.Detail != detail {
		return fmt.Errorf("expected detail %q, got %q", detail, body.Detail)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainRows(count int) error {
	var rows []map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &rows); err != nil {
		return fmt.Errorf("failed to decode rows %s: %w", s.responseBody, err)
	}
	if len(rows) != count {
		return fmt.Errorf("expected %d rows, got %d", count, len(rows))
	}
	return nil
}

func (s *StepsContext) iShouldReceiveAnAccessToken() error {
	if s.accessToken == "" {
		return fmt.Errorf("no access token received (body: %s)", s.responseBody)
	}
	return nil
}
