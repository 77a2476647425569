package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

func smtpConfig() (host, port, user, pass, fromName string, ok bool) {
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	user = os.Getenv("SMTP_USERNAME")
	pass = os.Getenv("SMTP_PASSWORD")
	fromName = os.Getenv("SMTP_FROM_NAME")
	ok = host != "" && port != "" && user != "" && pass != ""
	return
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func sendMultipart(to []string, subject, plainBody, htmlBody string) error {
	host, port, user, pass, fromName, ok := smtpConfig()
	if !ok {
		log.Printf("[MOCK EMAIL] to:%v subject:%s", to, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, user)
	auth := smtp.PlainAuth("", user, pass, host)
	addr := fmt.Sprintf("%s:%s", host, port)
	boundary := "----=_BOOKING_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, user, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendBookingRequestEmail notifies the guest and the property owner that a
// booking request was received and is pending review.
func SendBookingRequestEmail(guestEmail, ownerEmail, referenceCode, propertyTitle, checkIn, checkOut string, totalPrice float64) error {
	to := []string{}
	if strings.TrimSpace(guestEmail) != "" {
		to = append(to, guestEmail)
	}
	if strings.TrimSpace(ownerEmail) != "" {
		to = append(to, ownerEmail)
	}
	if len(to) == 0 {
		log.Printf("[MOCK EMAIL] booking %s has no recipients", referenceCode)
		return nil
	}

	subject := fmt.Sprintf("Booking request %s received", referenceCode)

	plainBody := fmt.Sprintf(
		"Booking request %s for %s\n"+
			"Check-in: %s\nCheck-out: %s\nTotal: %.2f\n\n"+
			"The request is pending review by the host.\n",
		referenceCode, propertyTitle, checkIn, checkOut, totalPrice,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Booking request received</h2>
  <p>Reference: <strong>%s</strong></p>
  <p>Property: %s</p>
  <p>Check-in: %s &middot; Check-out: %s</p>
  <p>Total: <strong>%.2f</strong></p>
  <p>The request is pending review by the host.</p>
</body>
</html>`,
		referenceCode, propertyTitle, checkIn, checkOut, totalPrice,
	)

	return sendMultipart(to, subject, plainBody, htmlBody)
}

// SendBookingStatusEmail tells the guest their booking changed status
// (confirmed, cancelled, rejected).
func SendBookingStatusEmail(guestEmail, referenceCode, propertyTitle, status string) error {
	if strings.TrimSpace(guestEmail) == "" {
		log.Printf("[MOCK EMAIL] booking %s status:%s has no guest email", referenceCode, status)
		return nil
	}

	subject := fmt.Sprintf("Booking %s is now %s", referenceCode, status)

	plainBody := fmt.Sprintf(
		"Your booking %s for %s is now %s.\n",
		referenceCode, propertyTitle, status,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Booking update</h2>
  <p>Your booking <strong>%s</strong> for %s is now <strong>%s</strong>.</p>
</body>
</html>`,
		referenceCode, propertyTitle, status,
	)

	return sendMultipart([]string{guestEmail}, subject, plainBody, htmlBody)
}
