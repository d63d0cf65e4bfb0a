package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

const (
	VerificationPath = "/api/auth/verify-email"
	ResetPath        = "/reset-password"

	VerificationSubject = "Confirm your email address"
	ResetSubject        = "Reset your password"
)

var (
	verificationTemplate = template.Must(template.New("verification").Parse(
		`<p>Welcome!</p>` +
			`<p>Please confirm your email address by following the link below:</p>` +
			`<p><a href="{{.Link}}">{{.Link}}</a></p>`))

	resetTemplate = template.Must(template.New("reset").Parse(
		`<p>We received a request to reset your password.</p>` +
			`<p>The link below is valid for a limited time:</p>` +
			`<p><a href="{{.Link}}">{{.Link}}</a></p>` +
			`<p>If you did not request a reset, ignore this email.</p>`))
)

// Templates renders email bodies with links rooted at PublicURL.
type Templates struct {
	PublicURL string
}

func NewTemplates(publicURL string) Templates {
	return Templates{PublicURL: strings.TrimRight(publicURL, "/")}
}

// VerificationEmail renders the body carrying the email-verification link.
func (t Templates) VerificationEmail(token string) (string, error) {
	return render(verificationTemplate, t.Link(VerificationPath, token))
}

// ResetEmail renders the body carrying the password-reset link.
func (t Templates) ResetEmail(token string) (string, error) {
	return render(resetTemplate, t.Link(ResetPath, token))
}

// Link builds PublicURL + path + "?token=" with the token query-escaped.
func (t Templates) Link(path, token string) string {
	return t.PublicURL + path + "?token=" + url.QueryEscape(token)
}

func render(tmpl *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return "", fmt.Errorf("error rendering %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
