package mailer

import (
	"context"
	"fmt"
	"net"
	"text/template"
	"time"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const (
	otpSubject = "Your verification code"

	defaultSendTimeout = 15 * time.Second
)

var otpBody = template.Must(template.New("otp").Parse(`Hi {{.Name}},

Your verification code is {{.Code}}.
It expires in {{.Minutes}} minutes. If you did not request it, ignore this email.
`))

// LogSender writes OTPs to the log instead of mailing them. Meant for development.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{logger: log}
}

func (s *LogSender) SendOTP(ctx context.Context, email, name, code string) error {
	s.logger.WithContext(ctx).Info("OTP issued",
		zap.String("email", email),
		zap.String("name", name),
		zap.String("otp", code))
	return nil
}

// SMTPSender mails OTPs through an SMTP relay. Every send is bounded by the request
// context and by the configured timeout.
type SMTPSender struct {
	cfg        config.SMTPConfig
	ttlMinutes int
	timeout    time.Duration
	logger     *logger.Logger
	send       func(ctx context.Context, msg *mail.Msg) error
}

func NewSMTPSender(cfg config.SMTPConfig, ttlMinutes int, log *logger.Logger) (*SMTPSender, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(timeout),
		mail.WithDialContextFunc(deadlineDialer(timeout)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{
		cfg:        cfg,
		ttlMinutes: ttlMinutes,
		timeout:    timeout,
		logger:     log,
		send:       func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

// deadlineDialer applies the dial context deadline to the whole SMTP conversation
func deadlineDialer(timeout time.Duration) mail.DialContextFunc {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		var d net.Dialer
		conn, err := d.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}

		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(timeout)
		}
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

func (s *SMTPSender) message(email, name, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(otpSubject)

	data := map[string]any{"Name": name, "Code": code, "Minutes": s.ttlMinutes}
	if err := msg.SetBodyTextTemplate(otpBody, data); err != nil {
		return nil, fmt.Errorf("failed to render otp email: %w", err)
	}
	return msg, nil
}

func (s *SMTPSender) SendOTP(ctx context.Context, email, name, code string) error {
	log := s.logger.WithContext(ctx)

	msg, err := s.message(email, name, code)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.send(ctx, msg); err != nil {
		log.Error("Failed to send OTP email", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("smtp send to %s failed: %w", email, err)
	}

	log.Info("OTP email sent", zap.String("email", email))
	return nil
}
