package mail

import (
	"bufio"
	"context"
	"io"
	"mime/quotedprintable"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"examhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSMTPServer accepts a single connection, advertises AUTH PLAIN without STARTTLS
// and hands the DATA section back through a channel.
type mockSMTPServer struct {
	listener net.Listener
	data     chan string
}

func newMockSMTPServer(t *testing.T) *mockSMTPServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &mockSMTPServer{listener: listener, data: make(chan string, 1)}
	go server.serve()
	t.Cleanup(func() { _ = listener.Close() })

	return server
}

func (s *mockSMTPServer) serve() {
	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)
	write := func(line string) bool {
		_, err := io.WriteString(conn, line+"\r\n")

		return err == nil
	}

	if !write("220 mock ESMTP") {
		return
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))

		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			write("250-mock")
			write("250 AUTH PLAIN")
		case strings.HasPrefix(cmd, "HELO"):
			write("250 mock")
		case strings.HasPrefix(cmd, "AUTH"):
			write("235 2.7.0 Authentication Succeeded")
		case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"):
			write("250 OK")
		case cmd == "DATA":
			write("354 End data with <CR><LF>.<CR><LF>")
			var body strings.Builder
			for {
				bodyLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if bodyLine == ".\r\n" {
					break
				}
				body.WriteString(bodyLine)
			}
			s.data <- body.String()
			write("250 OK: queued")
		case cmd == "QUIT":
			write("221 Bye")

			return
		default:
			write("250 OK")
		}
	}
}

func (s *mockSMTPServer) mailConfig(t *testing.T) *config.MailConfig {
	t.Helper()

	host, portStr, err := net.SplitHostPort(s.listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &config.MailConfig{
		Mode:        "smtp",
		Host:        host,
		Port:        port,
		Username:    "mailer",
		Password:    "secret",
		From:        "noreply@examhub.test",
		FromName:    "ExamHub",
		SendTimeout: 5 * time.Second,
	}
}

func decodeQuotedPrintable(t *testing.T, raw string) string {
	t.Helper()

	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)

	return string(decoded)
}

func TestSMTPNotifier_Send(t *testing.T) {
	server := newMockSMTPServer(t)
	notifier, err := NewSMTPNotifier(server.mailConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	link := "https://app.examhub.test/confirmar-email/abc"
	require.NoError(t, notifier.Send(ctx, "ana@example.com", "Bem-vindo", `<a href="`+link+`">aqui</a>`))

	var data string
	select {
	case data = <-server.data:
	case <-ctx.Done():
		t.Fatal("mock server never received DATA")
	}

	decoded := decodeQuotedPrintable(t, data)
	assert.Contains(t, decoded, "To: ana@example.com")
	assert.Contains(t, decoded, "From: ExamHub <noreply@examhub.test>")
	assert.Contains(t, decoded, "Subject: Bem-vindo")
	assert.Contains(t, decoded, `href="`+link+`"`)
}

func TestSMTPNotifier_RespectsContext(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	// Accept but never greet, so the client blocks until the context ends.
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			defer conn.Close()
			time.Sleep(2 * time.Second)
		}
	}()

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	notifier, err := NewSMTPNotifier(&config.MailConfig{Host: host, Port: port, From: "noreply@examhub.test"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = notifier.Send(ctx, "ana@example.com", "subject", "<p>body</p>")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewSMTPNotifier_RequiresHostAndFrom(t *testing.T) {
	_, err := NewSMTPNotifier(&config.MailConfig{Port: 25, From: "a@b.c"})
	assert.Error(t, err)

	_, err = NewSMTPNotifier(&config.MailConfig{Host: "smtp.example.com", Port: 25})
	assert.Error(t, err)
}
