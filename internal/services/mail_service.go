package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	// Configured reports whether the SMTP channel has credentials; when
	// false every send fails, and callers should treat the channel as
	// absent rather than attempt delivery.
	Configured() bool

	SendReportMail(to, subject, htmlBody, textBody, attachmentName string, attachment []byte) error
}

// SMTPConfig holds the SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.example.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "noreply@example.com"
	FromName   string // display name
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName string // used in footers
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) Configured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

// SendReportMail sends a multipart/mixed message: an alternative
// text+HTML body plus one PDF attachment.
func (s *smtpMailService) SendReportMail(to, subject, htmlBody, textBody, attachmentName string, attachment []byte) error {
	if !s.Configured() {
		return fmt.Errorf("smtp credentials missing")
	}

	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	mixedBoundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())
	altBoundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mimeQuote(subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", mixedBoundary)
	write("\r\n")

	// Body: multipart/alternative
	write("--%s\r\n", mixedBoundary)
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", altBoundary)

	// Attachment
	if len(attachment) > 0 {
		write("--%s\r\n", mixedBoundary)
		write("Content-Type: application/pdf; name=%q\r\n", attachmentName)
		write("Content-Disposition: attachment; filename=%q\r\n", attachmentName)
		write("Content-Transfer-Encoding: base64\r\n\r\n")
		writeBase64Wrapped(&msg, attachment)
		write("\r\n")
	}

	write("--%s--\r\n", mixedBoundary)

	return s.send(to, msg.Bytes())
}

// RFC 2045 wants encoded lines no longer than 76 characters.
func writeBase64Wrapped(buf *bytes.Buffer, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
}

func (s *smtpMailService) send(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.transmit(c, auth, to, msg)
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.transmit(c, auth, to, msg)
}

func (s *smtpMailService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// RFC 2047 encoding for non-ASCII header text; ASCII passes through.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}

// ------------------- Report summary templates -------------------

type reportMailData struct {
	AppName  string
	TestName string
	Summary  template.HTML
	Year     int
}

const reportHTMLTemplate = `<!doctype html>
<html lang="zh-CN">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #7c3aed 0%, #4f46e5 100%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 24px;">{{.AppName}}</h1>
    <p style="color: #e0e7ff; margin: 10px 0 0 0;">您的{{.TestName}}报告已生成</p>
  </div>

  <div style="background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; border-top: none;">
    <h2 style="color: #374151; margin-top: 0;">测试结果摘要</h2>
    {{.Summary}}

    <div style="background: #fff; padding: 20px; border-radius: 8px; margin-top: 20px; border: 1px solid #e5e7eb;">
      <p style="margin: 0; color: #6b7280;">完整的测试报告已作为PDF附件发送，请查收。</p>
    </div>
  </div>

  <div style="background: #f3f4f6; padding: 20px; border-radius: 0 0 12px 12px; text-align: center; border: 1px solid #e5e7eb; border-top: none;">
    <p style="margin: 0; color: #9ca3af; font-size: 14px;">
      {{.AppName}} © {{.Year}}<br>
      如有疑问，请联系客服
    </p>
  </div>
</body>
</html>`

const reportTextTemplate = `{{.AppName}} — 您的{{.TestName}}报告已生成

完整的测试报告已作为PDF附件发送，请查收。

{{.AppName}} (c) {{.Year}}
`

var (
	reportHTMLTpl = template.Must(template.New("reportHTML").Parse(reportHTMLTemplate))
	reportTextTpl = template.Must(template.New("reportText").Parse(reportTextTemplate))
)

// RenderReportMail produces the HTML and plaintext bodies for a report
// delivery email. summaryHTML is a trusted, server-built fragment.
func RenderReportMail(appName, testName string, summaryHTML string) (html string, text string, err error) {
	data := reportMailData{
		AppName:  appName,
		TestName: testName,
		Summary:  template.HTML(summaryHTML),
		Year:     time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err = reportHTMLTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = reportTextTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
