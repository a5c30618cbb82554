package notification

import (
	"fmt"
	"strings"

	"github.com/luksdev/travels-corp/internal/domain"
)

const dateLayout = "Jan 2, 2006"

// Message renders the short persisted form of a status change.
func Message(e domain.StatusChangeEvent) string {
	return fmt.Sprintf("Your travel request to %s has been %s.", e.Destination, e.NewStatus)
}

func EmailSubject(e domain.StatusChangeEvent) string {
	return fmt.Sprintf("Travel Request %s", e.NewStatus)
}

// EmailBody renders the mail form: greeting, outcome, one line per present
// date, closing. The return-date line is omitted entirely when absent.
func EmailBody(e domain.StatusChangeEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s!\n\n", e.Recipient.Name)
	fmt.Fprintf(&b, "%s\n", Message(e))
	fmt.Fprintf(&b, "Departure Date: %s\n", e.DepartureDate.Format(dateLayout))
	if e.ReturnDate != nil {
		fmt.Fprintf(&b, "Return Date: %s\n", e.ReturnDate.Format(dateLayout))
	}
	b.WriteString("\nThank you for using OnHappy!\n")

	return b.String()
}
