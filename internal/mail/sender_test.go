package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSendInvalidSender(t *testing.T) {
	cfg := Config{
		Host:      "smtp.example.com",
		Port:      587,
		Sender:    "not an address",
		Recipient: "team@example.com",
		UseTLS:    true,
	}

	err := Send(context.Background(), cfg, "subject", "<p>body</p>")

	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
}

func TestSendInvalidRecipient(t *testing.T) {
	cfg := Config{
		Host:      "smtp.example.com",
		Port:      587,
		Sender:    "reports@example.com",
		Recipient: "not an address",
		UseTLS:    true,
	}

	err := Send(context.Background(), cfg, "subject", "<p>body</p>")

	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
}

func TestDeliveryErrorUnwrap(t *testing.T) {
	cause := errors.New("535 authentication failed")
	err := &DeliveryError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("DeliveryError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "535 authentication failed") {
		t.Errorf("Error() = %q, missing cause detail", err.Error())
	}
}
