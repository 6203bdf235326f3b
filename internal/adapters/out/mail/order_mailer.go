// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderdom "bijoux/internal/domain/order"
)

// EmailClient abstracts the outbound mail provider (SendGrid in production).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// OrderMailer renders and sends the order confirmation mail.
type OrderMailer struct {
	Client EmailClient
	From   string
}

func NewOrderMailer(client EmailClient, from string) *OrderMailer {
	return &OrderMailer{Client: client, From: strings.TrimSpace(from)}
}

func (m *OrderMailer) SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error {
	if m == nil || m.Client == nil {
		return errors.New("order_mailer: email client is nil")
	}
	to := strings.TrimSpace(toEmail)
	if to == "" {
		return errors.New("order_mailer: recipient email is empty")
	}

	subject := fmt.Sprintf("Your order %s is confirmed", o.ID)
	body := renderOrderBody(o)

	return m.Client.Send(ctx, m.From, to, subject, body)
}

func renderOrderBody(o orderdom.Order) string {
	var b strings.Builder
	b.WriteString("Thank you for your purchase!\n\n")
	fmt.Fprintf(&b, "Order: %s\n", o.ID)
	fmt.Fprintf(&b, "Placed: %s\n\n", o.Date.UTC().Format("2006-01-02 15:04 UTC"))

	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %s  x%d  $%.2f\n", it.Name, it.Quantity, it.Price)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", o.Total)
	b.WriteString("\nWe will let you know as soon as your jewelry ships.\n")
	return b.String()
}
