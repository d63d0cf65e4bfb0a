// Package mailer contains the outgoing email gateway: an HTTP relay client
// built on resty, a log-only fallback for local runs, and the HTML templates
// of the verification and password-reset emails.
package mailer
