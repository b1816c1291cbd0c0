package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(ctx context.Context, to []string, subject, message string) error
	IsConfigured() bool
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

// SendEMail - отправка ограничена ctx: по его завершении соединение закрывается
func (i impl) SendEMail(ctx context.Context, to []string, subject, message string) (err error) {
	logger := log.WithField("recipients", strings.Join(to, ","))
	if !i.IsConfigured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	if len(to) == 0 {
		return nil
	}
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := fmt.Sprintf("Subject: Recruiting - %s\n%s\r\n%s\r\n", subject, mimeHeaders, message)

	err = i.send(ctx, to, body)
	if err != nil {
		if ctx.Err() != nil {
			err = errors.Wrap(ctx.Err(), err.Error())
		}
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return errors.Wrap(err, "ошибка отправки письма")
	}
	logger.Info("письмо отправлено")
	return nil
}

func (i impl) send(ctx context.Context, to []string, body string) error {
	addr := net.JoinHostPort(i.host, i.port)
	tlsConfig := &tls.Config{ServerName: i.host}
	var (
		conn net.Conn
		err  error
	)
	if i.tlsEnabled {
		dialer := &tls.Dialer{Config: tlsConfig}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		dialer := &net.Dialer{}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	// go-smtp выставляет свои дедлайны на каждую команду, поэтому соединение закрываем по ctx
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	var client *smtp.Client
	if i.tlsEnabled {
		client = smtp.NewClient(conn)
		if err = client.Hello("localhost"); err != nil {
			client.Close()
			return err
		}
	} else {
		client, err = smtp.NewClientStartTLS(conn, tlsConfig)
		if err != nil {
			return err
		}
	}
	defer client.Close()
	if deadline, ok := ctx.Deadline(); ok {
		client.CommandTimeout = time.Until(deadline)
		client.SubmissionTimeout = time.Until(deadline)
	}

	if ok, _ := client.Extension("AUTH"); !ok {
		return errors.New("smtp сервер не поддерживает AUTH")
	}
	if err = client.Auth(sasl.NewPlainClient("", i.user, i.password)); err != nil {
		return err
	}
	if err = client.SendMail(i.user, to, strings.NewReader(body)); err != nil {
		return err
	}
	return client.Quit()
}
