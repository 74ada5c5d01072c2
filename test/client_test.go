//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymweeks/internal/users"
)

// do sends a request to the running server. body, when not nil, is sent as JSON.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

// doJSON is do plus a status check and decoding of the response into out.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, expectedStatus int, out any) {
	t := s.T()
	status, respBytes := s.do(ctx, method, path, token, body)
	require.Equal(t, expectedStatus, status, "%s %s: %s", method, path, string(respBytes))
	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

func (s *IntegrationTestSuite) login(ctx context.Context, email, password string) users.LoginResponse {
	var loginResp users.LoginResponse
	s.doJSON(ctx, "POST", "/a/login", "", users.LoginRequest{
		Email:    email,
		Password: password,
	}, http.StatusOK, &loginResp)
	require.NotEmpty(s.T(), loginResp.Token)
	return loginResp
}

func (s *IntegrationTestSuite) adminLogin(ctx context.Context) string {
	return s.login(ctx, testAdminEmail, testAdminPassword).Token
}

// registerAndLogin creates a fresh USER and returns its token and profile.
func (s *IntegrationTestSuite) registerAndLogin(ctx context.Context) (string, users.User) {
	email := gofakeit.UUID() + "@gymweeks.test"
	password := gofakeit.Password(true, true, true, false, false, 12)

	var registered users.User
	s.doJSON(ctx, "POST", "/a/register", "", users.RegisterRequest{
		Email:     email,
		Username:  gofakeit.Username(),
		Password:  password,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}, http.StatusCreated, &registered)

	loginResp := s.login(ctx, email, password)
	return loginResp.Token, loginResp.User
}
