// Package notify delivers operator notifications over SMTP. The monitor
// only needs a synchronous send that either completes or fails with a
// transport error; retries and delivery guarantees are out of scope.
package notify
