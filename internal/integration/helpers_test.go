package integration_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Response fields that change on every request. cmp applies the filter to nested
// objects too, so systemInfo.version is skipped as well.
var volatileFields = map[string]bool{
	"timestamp":        true,
	"requestId":        true,
	"version":          true,
	"validationErrors": true,
}

var ignoreVolatileFields = cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
	return volatileFields[k]
})

type ticketLine struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

func purchaseBody(accountID int64, lines ...ticketLine) io.Reader {
	body, err := json.Marshal(map[string]any{
		"accountId": accountID,
		"tickets":   lines,
	})
	if err != nil {
		panic(fmt.Sprintf("marshal purchase body: %v", err))
	}

	return strings.NewReader(string(body))
}

func adults(n int) ticketLine   { return ticketLine{Category: "ADULT", Quantity: n} }
func children(n int) ticketLine { return ticketLine{Category: "CHILD", Quantity: n} }
func infants(n int) ticketLine  { return ticketLine{Category: "INFANT", Quantity: n} }

func newRequest(method, path string, body io.Reader, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// assertJSONBody compares the decoded body with want, ignoring volatile fields.
func assertJSONBody(t *testing.T, body io.Reader, want string) {
	t.Helper()

	var got, expected map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&got))
	require.NoError(t, json.Unmarshal([]byte(want), &expected))

	if diff := cmp.Diff(expected, got, ignoreVolatileFields); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}
