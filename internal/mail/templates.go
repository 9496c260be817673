package mail

import (
	"fmt"
	"html"

	"github.com/Vicky-2409/mern-survey-app/internal/public/domain"
)

// UserConfirmation builds the receipt email sent to the submitter.
func UserConfirmation(name string) Content {
	escaped := html.EscapeString(name)
	return Content{
		Subject: "Survey Submission Confirmation",
		Text: fmt.Sprintf("Dear %s,\n\n"+
			"Thank you for submitting your survey. We have received your response and will review it shortly.\n\n"+
			"Best regards,\nThe Survey Team", name),
		HTML: fmt.Sprintf(`<h2>Survey Submission Confirmation</h2>
<p>Dear %s,</p>
<p>Thank you for submitting your survey. We have received your response and will review it shortly.</p>
<p>Best regards,<br>The Survey Team</p>`, escaped),
	}
}

// AdminAlert builds the notification email sent to the administrator.
func AdminAlert(survey domain.Survey) Content {
	return Content{
		Subject: "New Survey Submission",
		Text: fmt.Sprintf("New survey submission received from %s.\n\n"+
			"Details:\nEmail: %s\nPhone: %s\nNationality: %s",
			survey.Name, survey.Email, survey.Phone, survey.Nationality),
		HTML: fmt.Sprintf(`<h2>New Survey Submission</h2>
<p>New survey submission received from %s.</p>
<h3>Details:</h3>
<ul>
  <li>Email: %s</li>
  <li>Phone: %s</li>
  <li>Nationality: %s</li>
</ul>`,
			html.EscapeString(survey.Name),
			html.EscapeString(survey.Email),
			html.EscapeString(survey.Phone),
			html.EscapeString(survey.Nationality)),
	}
}
