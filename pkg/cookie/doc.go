// Package cookie writes and reads HTTP cookies with shared defaults and
// HMAC-SHA256 signatures.
//
// A Manager is created with one or more secrets of at least 32 characters.
// The first secret signs new cookies; all of them are tried on read so secrets
// can be rotated without invalidating cookies already issued.
//
//	man, err := cookie.New([]string{secret}, cookie.WithSecure(true))
//	if err != nil {
//	    return err
//	}
//	man.SetSigned(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := man.GetSigned(r, "sid")
//
// Config can be loaded with pkg/config and passed to NewFromConfig. Errors are
// sentinels such as ErrCookieNotFound and ErrInvalidSignature; compare them with
// errors.Is.
package cookie
