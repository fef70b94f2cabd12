// Package transport performs the HTTP exchange with the Telegram Bot API.
//
// A Client issues exactly one request per call and returns the decoded
// response envelope. It never retries and never interprets the ok field:
// a well-formed {"ok":false,...} body is a successful call.
//
// # Connection pool
//
// Requests go through a Pool, by default an *http.Client over a keep-alive
// http.Transport built by NewPool. Inject your own with WithPool (tests use
// this to substitute a fake). Without one, the default pool is created on
// the first request and reused until Close.
//
// # Usage
//
//	c := transport.New(transport.WithLogger(logger))
//	defer c.Close()
//
//	resp, err := c.Post(ctx, "/bot123:ABC/getMe", struct{}{})
//	if err != nil {
//	    var netErr *transport.NetworkError
//	    if errors.As(err, &netErr) { ... }
//	}
//	if !resp.OK {
//	    log.Println(resp.Description)
//	}
package transport
