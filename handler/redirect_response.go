package handler

import (
	"net/http"
	"net/url"
)

// redirectResponse handles redirects for both DataStar and regular requests
type redirectResponse struct {
	url  string
	code int
}

// Render performs the redirect, handling both DataStar and regular requests
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
// For DataStar requests, it uses Server-Sent Events to trigger a client-side redirect.
// For regular requests, it performs a standard HTTP redirect.
//
// Example:
//
//	func placeOrder(ctx handler.Context, req CheckoutRequest) handler.Response {
//		// ...
//		return handler.Redirect("/userdashboardpage")
//	}
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// redirectBackResponse handles redirect to referrer
type redirectBackResponse struct {
	fallback string
	code     int
}

// Render redirects back to the referrer or fallback URL
func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	targetURL := r.fallback
	if referer := req.Header.Get("Referer"); referer != "" && isValidRedirectURL(referer, req) {
		targetURL = referer
	}

	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(targetURL)
	}

	http.Redirect(w, req, targetURL, r.code)
	return nil
}

// RedirectBack creates a redirect back to the referrer or fallback URL.
// Referrers from another host are ignored.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     http.StatusSeeOther,
	}
}

// isValidRedirectURL checks if a URL is safe to redirect to
func isValidRedirectURL(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	// Only allow same-host redirects (empty host means relative URL)
	return parsed.Host == "" || parsed.Host == r.Host
}
