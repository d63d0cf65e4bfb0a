// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// sendPath is the relay endpoint accepting one message per request.
const sendPath = "/v1/messages"

type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// httpMailer posts messages as JSON to a transactional-mail relay.
type httpMailer struct {
	client *utils.HTTPClient
	apiKey string
	from   string
}

// NewHTTPMailer returns a [Sender] bound to cfg.BaseURL.
func NewHTTPMailer(cfg config.Mailer) Sender {
	return &httpMailer{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		apiKey: cfg.APIKey,
		from:   cfg.From,
	}
}

func (m *httpMailer) Send(ctx context.Context, to, subject, html string) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyAddress
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message{From: m.from, To: to, Subject: subject, HTML: html})
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}

	resp, err := req.Post(sendPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// NewSender picks the relay-backed sender when a base URL is configured and
// the log-only one otherwise.
func NewSender(cfg config.Mailer, log *logger.Logger) Sender {
	if cfg.BaseURL == "" {
		log.Warn().Msg("mailer base url is empty, emails will only be logged")
		return NewLogMailer(log)
	}
	return NewHTTPMailer(cfg)
}
