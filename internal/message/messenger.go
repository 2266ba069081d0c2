package message

import "net/url"

// MessengerLink builds the fire-and-forget Messenger deep link for the
// payload. Spaces are percent-encoded as %20, not +, so the link matches
// what encodeURIComponent-based clients produce.
func MessengerLink(storeHandle, payload string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "m.me",
		Path:     "/" + storeHandle,
		RawQuery: "text=" + encodeComponent(payload),
	}
	return u.String()
}

func encodeComponent(v string) string {
	escaped := url.QueryEscape(v)
	out := make([]byte, 0, len(escaped))
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '+' {
			out = append(out, '%', '2', '0')
		} else {
			out = append(out, escaped[i])
		}
	}
	return string(out)
}
