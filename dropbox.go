package moneytxt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// dropboxLedgerPath is where the ledger lives inside the Dropbox app folder.
const dropboxLedgerPath = "/money.txt"

const dropboxDownloadURL = "https://content.dropboxapi.com/2/files/download"

// dropboxDownload fetches the content of a file from Dropbox using a
// token-based app folder. Responses are served through the daily disk cache
// so repeated report runs within a day do not hit the API again.
func dropboxDownload(token, path string) (string, error) {
	arg, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest(http.MethodPost, dropboxDownloadURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Dropbox-API-Arg", string(arg))

	resp, err := daily().Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot download %q from Dropbox: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read Dropbox response for %q: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cannot download %q from Dropbox: %v: %s",
			path, resp.Status, dropboxErrorSummary(body))
	}
	return string(body), nil
}

// dropboxErrorSummary extracts the human readable "error_summary" field from
// a Dropbox API error body, falling back to the raw body.
func dropboxErrorSummary(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return strings.TrimSpace(string(body))
	}
	jval, err := jsonpath.Get("$.error_summary", jobj)
	if err != nil {
		return strings.TrimSpace(string(body))
	}
	// because jsonpath is never clear about whether it returns a list of one
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	if s, ok := jval.(string); ok {
		return s
	}
	return strings.TrimSpace(string(body))
}
