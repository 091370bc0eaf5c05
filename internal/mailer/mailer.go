// File: internal/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message 要寄出的信件
type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer 寄信介面
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// sendClient 為 *sendgrid.Client 用到的方法
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

var newSendClient = func(apiKey string) sendClient {
	return sendgrid.NewSendClient(apiKey)
}

// SendGridMailer 透過 SendGrid API 寄信
type SendGridMailer struct {
	client   sendClient
	from     string
	fromName string
}

func NewSendGridMailer(apiKey, from, fromName string) *SendGridMailer {
	return &SendGridMailer{client: newSendClient(apiKey), from: from, fromName: fromName}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	email := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		msg.Subject,
		mail.NewEmail(msg.ToName, msg.To),
		msg.PlainText,
		msg.HTML,
	)
	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", msg.To, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer 不寄信，只寫 log；未設定 SENDGRID_API_KEY 的開發環境使用
type LogMailer struct {
	Logger echo.Logger
}

// Send 只在 INFO 記收件人與主旨；內文含重設 token，只寫到 DEBUG
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.Logger.Infof("mail to=%s subject=%q (body at debug level)", msg.To, msg.Subject)
	m.Logger.Debugf("mail to=%s body=%q", msg.To, msg.PlainText)
	return nil
}

// New 依是否有 API key 選擇實作
func New(apiKey, from, fromName string, logger echo.Logger) Mailer {
	if apiKey == "" {
		return &LogMailer{Logger: logger}
	}
	return NewSendGridMailer(apiKey, from, fromName)
}
