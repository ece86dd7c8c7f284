package checkout

import "net/url"

const (
	paramSuccess = "success"
	paramCancel  = "cancel"
	paramToken   = "token"

	successMarker = "?" + paramSuccess + "=true"
	cancelMarker  = "?" + paramCancel + "=true"
)

// ReturnParams are the query parameters PayPal appends when sending the
// buyer back to the page.
type ReturnParams struct {
	Success string
	Token   string
}

func ParseReturnParams(rawQuery string) ReturnParams {
	// Malformed pairs are skipped; the well-formed ones still count.
	q, _ := url.ParseQuery(rawQuery)
	return ReturnParams{Success: q.Get(paramSuccess), Token: q.Get(paramToken)}
}

// ShouldCapture holds only for the literal success flag "true" and a
// non-empty token.
func (p ReturnParams) ShouldCapture() bool {
	return p.Success == "true" && p.Token != ""
}

// RedirectURLs appends the return and cancel markers to the page location
// verbatim.
func RedirectURLs(location string) (returnURL, cancelURL string) {
	return location + successMarker, location + cancelMarker
}
