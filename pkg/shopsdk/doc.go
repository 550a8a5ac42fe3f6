// Package shopsdk is the Go client for the storefront API and the home of its
// wire types.
//
// The server encodes its responses with the types defined here, so a client
// built on this package always agrees with the server on field names:
//
//	c := shopsdk.NewClient("https://shop.example.com")
//	s := c.WithToken(userToken)
//	profile, err := s.GetProfile(ctx, 42)
//
// Failed requests return an *APIError carrying the HTTP status and the
// machine readable error code.
package shopsdk
